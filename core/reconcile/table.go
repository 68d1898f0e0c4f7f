package reconcile

import "sort"

// UndefinedKey is the key of rows whose key column is absent or empty.
const UndefinedKey = ""

// Table is a keyed index over one snapshot. It is immutable once built.
type Table struct {
	header    []string
	keyColumn string
	rows      map[string]Row

	// Duplicates lists keys that occurred more than once, in order of first
	// repetition. Only the last row for such a key is kept.
	Duplicates []string

	// Undefined counts rows whose key resolved to UndefinedKey.
	Undefined int

	// RowCount is the number of input rows, including overwritten ones.
	RowCount int
}

// BuildTable indexes rows by the value of keyColumn.
//
// A repeated key replaces the earlier row. The call fails with a
// MissingKeyColumnError when keyColumn is not part of header, or when rows is
// non-empty and no row has a value for it.
func BuildTable(header []string, rows []Row, keyColumn string) (*Table, error) {
	if !containsColumn(header, keyColumn) {
		return nil, &MissingKeyColumnError{Column: keyColumn}
	}

	t := &Table{
		header:    append([]string(nil), header...),
		keyColumn: keyColumn,
		rows:      make(map[string]Row, len(rows)),
		RowCount:  len(rows),
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		key := UndefinedKey
		if v, ok := row[keyColumn]; ok && !v.IsBlank() {
			key = v.String
		} else {
			t.Undefined++
		}

		if _, exists := t.rows[key]; exists {
			if _, reported := seen[key]; !reported {
				seen[key] = struct{}{}
				t.Duplicates = append(t.Duplicates, key)
			}
		}
		t.rows[key] = row
	}

	if len(rows) > 0 && t.Undefined == len(rows) {
		return nil, &MissingKeyColumnError{Column: keyColumn}
	}

	return t, nil
}

// Header returns a copy of the column list the table was built from.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// KeyColumn returns the column keys were read from.
func (t *Table) KeyColumn() string {
	return t.keyColumn
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row stored for key.
func (t *Table) Row(key string) (Row, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// HasColumn reports whether column is in the table header.
func (t *Table) HasColumn(column string) bool {
	return containsColumn(t.header, column)
}

// Keys returns all keys in ascending order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.rows))
	for key := range t.rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func containsColumn(header []string, column string) bool {
	for _, h := range header {
		if h == column {
			return true
		}
	}
	return false
}
