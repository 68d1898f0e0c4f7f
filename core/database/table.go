package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"csvdiff/core/reconcile"

	"gorm.io/gorm"
)

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)?$`)

// ValidateTable rejects names that cannot be safely interpolated into SQL.
func ValidateTable(table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// LoadTable reads every row of table into a dataset. The header is the
// result column order; SQL NULL becomes an absent value.
func LoadTable(ctx context.Context, db *gorm.DB, table string) (*reconcile.Dataset, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Table(table).Select("*").Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	ds := &reconcile.Dataset{Name: "db://" + table, Header: header}

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		row := make(reconcile.Row, len(header))
		for i, name := range header {
			if cells[i].Valid {
				row[name] = reconcile.Text(cells[i].String)
			} else {
				row[name] = reconcile.Null()
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}

	return ds, nil
}
