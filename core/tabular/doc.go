// Package tabular reads CSV snapshots into reconcile datasets.
//
// Input is UTF-8 with a header record and comma-separated fields. Quoting
// follows RFC 4180 as implemented by encoding/csv. Rows whose field count
// differs from the header, invalid UTF-8 and duplicate header names are
// reported as *ParseError (errors.Is(err, ErrParse)).
//
// # Usage
//
//	f, err := os.Open("previous.csv")
//	ds, err := tabular.Read(f, tabular.WithName("previous.csv"))
package tabular
