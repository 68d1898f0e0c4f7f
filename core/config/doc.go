// Package config provides configuration management for csvdiff.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config file (config.yaml, config.json, ...) and environment variables.
// Command-line flags of the diff command override the diff section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Diff: mode (by-column, by-key), key column, target columns
//   - Report: timestamp zone and output format
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: MySQL or SQLite connection for db:// snapshots
//   - Storage: S3/MinIO credentials and default bucket for s3: snapshots
//   - Log: Logging level, format and optional log directory
//
// Diff settings default to the placeholder DEFAULT, which counts as unset:
// a run with any of them unset fails with ErrInvalidArgument.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Diff.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
