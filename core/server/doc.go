// Package server holds the HTTP server configuration.
//
// The serve command owns the Fiber app; this package only defines the
// settings it reads: listen port, optional API key, upload size limit and how long
// remote snapshots stay cached between requests.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/serve.go.
package server
