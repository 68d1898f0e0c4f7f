package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"csvdiff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csvdiff",
	Short: "Compare two CSV snapshots by key",
	Long: `csvdiff compares a previous and a current snapshot of the same table,
keyed by one column, and reports added and removed records and every change
in the selected target columns. Snapshots can be local files, objects in
S3-compatible storage or database tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console encoding at debug level gives ISO8601 timestamps for CLI users.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and config.{yaml,json,toml}")
}
