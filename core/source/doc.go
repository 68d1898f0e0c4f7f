// Package source resolves where snapshots come from and where reports go.
//
// A location is a local path, an object in S3-compatible storage
// (s3://bucket/key, or s3:key in the configured bucket) or a database table
// (db://table). Storage and database connections are opened on first use.
package source
