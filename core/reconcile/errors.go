package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKeyColumn is matched by errors that report a key column that
	// never resolves to a value in a dataset.
	ErrMissingKeyColumn = errors.New("missing key column")

	// ErrMissingColumn is matched by errors that report a target column absent
	// from a dataset or row.
	ErrMissingColumn = errors.New("missing column")
)

// Side names which snapshot an error refers to.
type Side string

const (
	// SidePrevious is the older snapshot.
	SidePrevious Side = "previous"
	// SideCurrent is the newer snapshot.
	SideCurrent Side = "current"
)

// MissingKeyColumnError is returned when the configured key column is not in
// a dataset header, or when no row of the dataset has a value for it.
type MissingKeyColumnError struct {
	Column string
	// Dataset is the name of the offending input, if known.
	Dataset string
}

func (e *MissingKeyColumnError) Error() string {
	if e.Dataset != "" {
		return fmt.Sprintf("key column %q never resolves in %s", e.Column, e.Dataset)
	}
	return fmt.Sprintf("key column %q never resolves", e.Column)
}

// Is makes errors.Is(err, ErrMissingKeyColumn) succeed.
func (e *MissingKeyColumnError) Is(target error) bool {
	return target == ErrMissingKeyColumn
}

// MissingColumnError is returned when a target column is absent from one of
// the datasets (Key empty) or from a specific row (Key set).
type MissingColumnError struct {
	Column string
	Key    string
	Side   Side
}

func (e *MissingColumnError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("column %q missing from %s row %q", e.Column, e.Side, e.Key)
	}
	return fmt.Sprintf("column %q missing from %s dataset", e.Column, e.Side)
}

// Is makes errors.Is(err, ErrMissingColumn) succeed.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
