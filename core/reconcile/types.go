package reconcile

// Row maps column name to value. Column order is carried by the header, not
// the row.
type Row map[string]Value

// Dataset is a fully materialized snapshot: a header and its rows.
type Dataset struct {
	// Name identifies the input (file path, object URI, table) in errors and
	// reports.
	Name string `json:"name"`

	// Header is the ordered list of column names.
	Header []string `json:"header"`

	// Rows holds one entry per data record in input order.
	Rows []Row `json:"-"`
}

// FieldChange is one differing target column of a matched key.
type FieldChange struct {
	// Column is the target column name.
	Column string `json:"column"`

	// Previous is the value in the previous snapshot.
	Previous Value `json:"previous"`

	// Current is the value in the current snapshot.
	Current Value `json:"current"`
}

// ChangeRecord lists the differing target columns for one key, in target
// column order.
type ChangeRecord struct {
	Key    string        `json:"key"`
	Fields []FieldChange `json:"fields"`
}

// Empty reports whether no target column differed.
func (c ChangeRecord) Empty() bool {
	return len(c.Fields) == 0
}

// Has reports whether column is among the changed fields.
func (c ChangeRecord) Has(column string) bool {
	_, ok := c.Field(column)
	return ok
}

// Field returns the change for column, if any.
func (c ChangeRecord) Field(column string) (FieldChange, bool) {
	for _, f := range c.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return FieldChange{}, false
}

// Partitioning is the three-way split of the keys of two tables.
// Each slice is sorted ascending.
type Partitioning struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Matched []string `json:"matched"`
}

// Result is the output of one reconciliation run.
type Result struct {
	// KeyColumn is the column the record keys were read from.
	KeyColumn string `json:"key_column"`

	// Columns is the ordered list of compared target columns.
	Columns []string `json:"columns"`

	// Added holds keys present only in the current snapshot (sorted).
	Added []string `json:"added"`

	// Removed holds keys present only in the previous snapshot (sorted).
	Removed []string `json:"removed"`

	// Matched holds keys present in both snapshots (sorted).
	Matched []string `json:"matched"`

	// Changes maps each matched key with at least one differing target
	// column to its change record. Unchanged keys are absent.
	Changes map[string]ChangeRecord `json:"changes"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// ChangedKeys returns the keys of Changes in ascending order.
func (r *Result) ChangedKeys() []string {
	keys := make([]string, 0, len(r.Changes))
	for _, key := range r.Matched {
		if _, ok := r.Changes[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// KeysChangedIn returns the sorted keys whose given column changed.
func (r *Result) KeysChangedIn(column string) []string {
	var keys []string
	for _, key := range r.ChangedKeys() {
		if r.Changes[key].Has(column) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// PreviousRows is the number of data rows read from the previous snapshot.
	PreviousRows int `json:"previous_rows"`

	// CurrentRows is the number of data rows read from the current snapshot.
	CurrentRows int `json:"current_rows"`

	// Added counts keys only in the current snapshot.
	Added int `json:"added"`

	// Removed counts keys only in the previous snapshot.
	Removed int `json:"removed"`

	// Matched counts keys in both snapshots.
	Matched int `json:"matched"`

	// Changed counts matched keys with at least one differing target column.
	Changed int `json:"changed"`

	// FieldChanges counts differing (key, column) pairs.
	FieldChanges int `json:"field_changes"`

	// Duplicates counts keys that appeared more than once in either input.
	Duplicates int `json:"duplicates"`
}
