package reconcile

// DiffRow compares the given columns of one key's previous and current rows.
//
// Columns are visited in order and every unequal pair is recorded. A column
// missing from either row yields a MissingColumnError. Rows equal on every
// column produce an empty record.
func DiffRow(key string, previous, current Row, columns []string) (ChangeRecord, error) {
	record := ChangeRecord{Key: key}

	for _, column := range columns {
		prev, ok := previous[column]
		if !ok {
			return ChangeRecord{}, &MissingColumnError{Column: column, Key: key, Side: SidePrevious}
		}
		curr, ok := current[column]
		if !ok {
			return ChangeRecord{}, &MissingColumnError{Column: column, Key: key, Side: SideCurrent}
		}

		if !Equal(prev, curr) {
			record.Fields = append(record.Fields, FieldChange{
				Column:   column,
				Previous: prev,
				Current:  curr,
			})
		}
	}

	return record, nil
}
