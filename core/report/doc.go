// Package report turns a reconciliation result into a text or JSON report.
//
// Text reports are UTF-8 with CRLF line endings. They start with a header
// naming the two inputs and a timestamp, list added and removed keys, then
// group changes either by target column (ModeByColumn) or by record key
// (ModeByKey).
//
// # Example (by-column)
//
//	==Changes[column](2026-10-15T09:30:00+09:00)==
//	Previous(csv1):previous.csv
//	Current(csv2) :current.csv
//	Added:2
//	Removed:(none)
//	column:name
//	  NO CHANGE.
//	column:age
//	  id:1
//	    1: 30 => 31
package report
