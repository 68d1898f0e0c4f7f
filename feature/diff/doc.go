// Package diff runs snapshot comparisons for the CLI and the HTTP service.
//
// The Service merges per-request settings (mode, key column, target columns)
// over the configured defaults, loads the two snapshots concurrently,
// reconciles them and renders the report. Every run gets an id that is
// attached to its log lines and returned in the X-Run-ID header.
//
// # HTTP Endpoints
//
//   - POST /diff : compares two uploaded CSV files (multipart fields previous, current).
//   - POST /diff/sources : compares snapshots in object storage or the database.
//   - GET /inspect?source=... : header, row count and duplicate keys of one snapshot.
//
// Errors are returned as {"error": "..."} with 400 for bad input or CSV, 404
// for missing snapshots and 422 when the key or a target column is missing.
package diff
