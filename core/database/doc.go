// Package database reads snapshot tables through GORM.
//
// Snapshots can live in a MySQL (or SQLite) table instead of a CSV file. A
// table is read with SELECT * and turned into the same dataset the CSV reader
// produces: the result columns become the header and SQL NULL becomes an
// absent value. Like a missing CSV field it compares equal to an empty string
// but is shown as (null) in reports.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	ds, err := database.LoadTable(ctx, db, "users_snapshot")
//	columns, err := database.GetTableColumns(ctx, db, "users_snapshot")
package database
