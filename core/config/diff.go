package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"csvdiff/core/report"
)

// Unset is the placeholder value of diff settings nobody configured.
const Unset = "DEFAULT"

var (
	// ErrInvalidArgument reports a required argument or setting that is
	// missing, empty, or left at Unset.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidMode reports a mode other than by-column or by-key.
	ErrInvalidMode = errors.New("invalid mode")
)

// DiffConfig holds the comparison settings.
type DiffConfig struct {
	// Mode selects the report grouping: by-column or by-key.
	Mode string `mapstructure:"mode" default:"DEFAULT"`
	// KeyColumn is the column whose value identifies a record.
	KeyColumn string `mapstructure:"key_column" default:"DEFAULT"`
	// TargetColumns is the comma-delimited, ordered list of compared columns.
	TargetColumns string `mapstructure:"target_columns" default:"DEFAULT"`
}

// Validate checks that every setting is present and the mode is known.
func (c DiffConfig) Validate() error {
	if isUnset(c.Mode) {
		return fmt.Errorf("%w: diff.mode is empty or %s", ErrInvalidArgument, Unset)
	}
	if !report.Mode(c.Mode).IsValid() {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidMode, c.Mode, report.ModeByColumn, report.ModeByKey)
	}
	if isUnset(c.KeyColumn) {
		return fmt.Errorf("%w: diff.key_column is empty or %s", ErrInvalidArgument, Unset)
	}
	if isUnset(c.TargetColumns) || len(c.Columns()) == 0 {
		return fmt.Errorf("%w: diff.target_columns is empty or %s", ErrInvalidArgument, Unset)
	}
	return nil
}

// ReportMode returns the configured mode. Call Validate first.
func (c DiffConfig) ReportMode() report.Mode {
	return report.Mode(c.Mode)
}

// Columns parses TargetColumns as a single CSV record, so names containing
// commas can be quoted. Names are kept verbatim; empty entries and repeats
// of an earlier name are dropped.
func (c DiffConfig) Columns() []string {
	r := csv.NewReader(strings.NewReader(c.TargetColumns))
	record, err := r.Read()
	if err != nil {
		return nil
	}
	var columns []string
	seen := make(map[string]bool, len(record))
	for _, name := range record {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		columns = append(columns, name)
	}
	return columns
}

func isUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == Unset
}

// RequireArgs returns ErrInvalidArgument naming the first empty argument.
func RequireArgs(names []string, values []string) error {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			name := fmt.Sprintf("argument %d", i+1)
			if i < len(names) {
				name = names[i]
			}
			return fmt.Errorf("%w: %s is empty", ErrInvalidArgument, name)
		}
	}
	return nil
}
