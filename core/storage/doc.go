// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that CSV snapshots can be read from, and
// reports written to, AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - Open: checks the bucket and streams an object.
//   - Upload: creates the bucket if needed and overwrites an object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := storage.Open(ctx, client, "snapshots", "2026-10-15/users.csv")
package storage
