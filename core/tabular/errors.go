package tabular

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error produced while reading tabular input.
	ErrParse = errors.New("parse error")

	// ErrEmptyInput is returned when the input has no header record.
	ErrEmptyInput = errors.New("input has no header")

	// ErrDuplicateHeader is returned when a column name occurs twice in the header.
	ErrDuplicateHeader = errors.New("duplicate column in header")

	// ErrInvalidUTF8 is returned when a field is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// ParseError reports malformed input, such as a row whose field count differs
// from the header.
type ParseError struct {
	// Dataset is the name of the input, if known.
	Dataset string
	// Line is the 1-based line where the problem was found, or 0.
	Line int
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	name := e.Dataset
	if name == "" {
		name = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", name, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) succeed.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
