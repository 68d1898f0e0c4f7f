package reconcile

import "errors"

// Index builds the keyed table for a dataset, attaching the dataset name to
// a MissingKeyColumnError.
func Index(ds Dataset, keyColumn string) (*Table, error) {
	t, err := BuildTable(ds.Header, ds.Rows, keyColumn)
	if err != nil {
		var mk *MissingKeyColumnError
		if errors.As(err, &mk) {
			mk.Dataset = ds.Name
		}
		return nil, err
	}
	return t, nil
}

// Reconcile compares two snapshots.
// It indexes both datasets by keyColumn, partitions the keys, and diffs the
// target columns of every matched key. Only keys with at least one differing
// column end up in Result.Changes.
//
// Every target column must exist in both headers; otherwise the whole run
// fails with a MissingColumnError before any row is compared.
func Reconcile(previous, current Dataset, keyColumn string, columns []string) (*Result, error) {
	prevTable, err := Index(previous, keyColumn)
	if err != nil {
		return nil, err
	}
	currTable, err := Index(current, keyColumn)
	if err != nil {
		return nil, err
	}

	return ReconcileTables(prevTable, currTable, columns)
}

// ReconcileTables runs the comparison over already indexed tables.
func ReconcileTables(previous, current *Table, columns []string) (*Result, error) {
	if err := checkColumns(previous, SidePrevious, columns); err != nil {
		return nil, err
	}
	if err := checkColumns(current, SideCurrent, columns); err != nil {
		return nil, err
	}

	p := Partition(previous, current)

	changes := make(map[string]ChangeRecord)
	fieldChanges := 0
	for _, key := range p.Matched {
		prevRow, _ := previous.Row(key)
		currRow, _ := current.Row(key)

		record, err := DiffRow(key, prevRow, currRow, columns)
		if err != nil {
			return nil, err
		}
		if record.Empty() {
			continue
		}
		changes[key] = record
		fieldChanges += len(record.Fields)
	}

	return &Result{
		KeyColumn: previous.KeyColumn(),
		Columns:   append([]string(nil), columns...),
		Added:     p.Added,
		Removed:   p.Removed,
		Matched:   p.Matched,
		Changes:   changes,
		Summary: Summary{
			PreviousRows: previous.RowCount,
			CurrentRows:  current.RowCount,
			Added:        len(p.Added),
			Removed:      len(p.Removed),
			Matched:      len(p.Matched),
			Changed:      len(changes),
			FieldChanges: fieldChanges,
			Duplicates:   len(previous.Duplicates) + len(current.Duplicates),
		},
	}, nil
}

// checkColumns verifies that every target column is part of the table header.
func checkColumns(t *Table, side Side, columns []string) error {
	for _, column := range columns {
		if !t.HasColumn(column) {
			return &MissingColumnError{Column: column, Side: side}
		}
	}
	return nil
}
