package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"csvdiff/core/reconcile"
)

// utf8BOM is commonly written by Windows programs at the start of a file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type options struct {
	name  string
	comma rune
}

// Option configures Read.
type Option func(*options)

// WithName sets the dataset name used in errors and on the result.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDelimiter overrides the field delimiter. The default is a comma.
// A zero rune keeps the default.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.comma = r
		}
	}
}

// Read parses CSV input into a dataset.
//
// The first record is the header. Every following record must have the same
// number of fields as the header; a ragged row is a ParseError. Fields must be
// valid UTF-8. A leading byte order mark is skipped.
func Read(r io.Reader, opts ...Option) (*reconcile.Dataset, error) {
	o := options{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = o.comma
	// 0 makes the header's field count mandatory for every record.
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Dataset: o.name, Err: ErrEmptyInput}
	}
	if err != nil {
		return nil, wrapCSVError(o.name, err)
	}
	if err := checkHeader(o.name, header); err != nil {
		return nil, err
	}

	ds := &reconcile.Dataset{
		Name:   o.name,
		Header: header,
		Rows:   []reconcile.Row{},
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(o.name, err)
		}

		row := make(reconcile.Row, len(header))
		for i, field := range record {
			if !utf8.ValidString(field) {
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{
					Dataset: o.name,
					Line:    line,
					Err:     fmt.Errorf("column %q: %w", header[i], ErrInvalidUTF8),
				}
			}
			row[header[i]] = reconcile.Text(field)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

func checkHeader(name string, header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, column := range header {
		if !utf8.ValidString(column) {
			return &ParseError{Dataset: name, Line: 1, Err: fmt.Errorf("header: %w", ErrInvalidUTF8)}
		}
		if _, ok := seen[column]; ok {
			return &ParseError{Dataset: name, Line: 1, Err: fmt.Errorf("%w: %q", ErrDuplicateHeader, column)}
		}
		seen[column] = struct{}{}
	}
	return nil
}

func wrapCSVError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Dataset: name, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Dataset: name, Err: err}
}
