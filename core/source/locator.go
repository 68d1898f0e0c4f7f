package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocator is returned when a source or output location cannot be parsed.
var ErrInvalidLocator = errors.New("invalid locator")

// Kind is the backend a Locator points at.
type Kind int

const (
	// KindFile is a path on the local filesystem.
	KindFile Kind = iota
	// KindObject is an object in S3-compatible storage.
	KindObject
	// KindTable is a database table.
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindTable:
		return "table"
	default:
		return "file"
	}
}

const (
	objectScheme = "s3:"
	tableScheme  = "db://"
)

// Locator identifies where a snapshot is read from or a report is written to.
type Locator struct {
	Kind   Kind
	Raw    string
	Path   string
	Bucket string
	Object string
	Table  string
}

// ParseLocator parses one of:
//
//	path/to/file.csv
//	s3://bucket/object/key.csv
//	s3:object/key.csv        (in defaultBucket)
//	db://table
func ParseLocator(raw, defaultBucket string) (Locator, error) {
	if strings.TrimSpace(raw) == "" {
		return Locator{}, fmt.Errorf("%w: empty", ErrInvalidLocator)
	}

	switch {
	case strings.HasPrefix(raw, tableScheme):
		table := strings.TrimPrefix(raw, tableScheme)
		if table == "" {
			return Locator{}, fmt.Errorf("%w: %q has no table", ErrInvalidLocator, raw)
		}
		return Locator{Kind: KindTable, Raw: raw, Table: table}, nil

	case strings.HasPrefix(raw, objectScheme+"//"):
		rest := strings.TrimPrefix(raw, objectScheme+"//")
		bucket, object, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || object == "" {
			return Locator{}, fmt.Errorf("%w: %q must be s3://bucket/object", ErrInvalidLocator, raw)
		}
		return Locator{Kind: KindObject, Raw: raw, Bucket: bucket, Object: object}, nil

	case strings.HasPrefix(raw, objectScheme):
		object := strings.TrimLeft(strings.TrimPrefix(raw, objectScheme), "/")
		if object == "" {
			return Locator{}, fmt.Errorf("%w: %q has no object", ErrInvalidLocator, raw)
		}
		if defaultBucket == "" {
			return Locator{}, fmt.Errorf("%w: %q needs storage.bucket to be set", ErrInvalidLocator, raw)
		}
		return Locator{Kind: KindObject, Raw: raw, Bucket: defaultBucket, Object: object}, nil
	}

	return Locator{Kind: KindFile, Raw: raw, Path: raw}, nil
}

func (l Locator) String() string {
	return l.Raw
}
