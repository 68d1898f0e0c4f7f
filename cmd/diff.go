package cmd

import (
	"fmt"
	"io"
	"time"

	"csvdiff/core/config"
	"csvdiff/feature/diff"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var diffFlags struct {
	mode    string
	key     string
	columns string
	format  string
}

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff PREVIOUS CURRENT OUTPUT",
	Short: "Compare two snapshots and write a change report",
	Long: `Compares the target columns of PREVIOUS and CURRENT, matching records by the
key column, and writes the report to OUTPUT. Each location is a local path,
s3://bucket/object, s3:object (configured bucket) or db://table (sources only).

Mode, key column and target columns come from configuration (DIFF_MODE,
DIFF_KEY_COLUMN, DIFF_TARGET_COLUMNS) unless given as flags. The report is only
written after the comparison succeeded.`,
	Example: `  csvdiff diff old/users.csv new/users.csv out/users.txt --mode by-key --key id --columns name,email
  csvdiff diff s3://snaps/2026-10-14/users.csv s3://snaps/2026-10-15/users.csv s3://reports/users.txt`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RequireArgs([]string{"PREVIOUS", "CURRENT", "OUTPUT"}, args); err != nil {
			return err
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		start := time.Now()
		a.log.Info("Diff started", zap.Strings("args", args))

		out, err := a.service.Run(cmd.Context(), diff.Request{
			Previous:      args[0],
			Current:       args[1],
			Output:        args[2],
			Mode:          diffFlags.mode,
			KeyColumn:     diffFlags.key,
			TargetColumns: diffFlags.columns,
			Format:        diffFlags.format,
		})
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), out, args[2])
		a.log.Info("Diff finished", zap.String("run_id", out.RunID), zap.Duration("duration", time.Since(start)))
		return nil
	},
}

func printSummary(w io.Writer, out *diff.Outcome, output string) {
	s := out.Result.Summary
	bold := color.New(color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	changed := color.New(color.FgYellow)

	bold.Fprintln(w, "=== Diff Summary ===")
	fmt.Fprintf(w, "Key column:    %s\n", out.Result.KeyColumn)
	fmt.Fprintf(w, "Rows:          %d previous, %d current\n", s.PreviousRows, s.CurrentRows)
	added.Fprintf(w, "Added:         %d\n", s.Added)
	removed.Fprintf(w, "Removed:       %d\n", s.Removed)
	changed.Fprintf(w, "Changed:       %d of %d matched (%d fields)\n", s.Changed, s.Matched, s.FieldChanges)
	if s.Duplicates > 0 {
		changed.Fprintf(w, "Duplicate keys: %d (last row kept)\n", s.Duplicates)
	}
	fmt.Fprintf(w, "Report:        %s\n", output)
}

func init() {
	RootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVar(&diffFlags.mode, "mode", "", "Report grouping: by-column or by-key")
	diffCmd.Flags().StringVar(&diffFlags.key, "key", "", "Key column")
	diffCmd.Flags().StringVar(&diffFlags.columns, "columns", "", "Comma-separated target columns")
	diffCmd.Flags().StringVar(&diffFlags.format, "format", "", "Report format: text or json")
}
