package cmd

import (
	"fmt"
	"strings"

	"csvdiff/core/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var inspectKey string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect SOURCE",
	Short: "Show how a snapshot indexes by the key column",
	Long: `Loads one snapshot and prints its header, row count and the keys that occur
more than once. Only the last row of a repeated key takes part in a diff.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		info, err := a.service.Inspect(cmd.Context(), args[0], inspectKey)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		color.New(color.Bold).Fprintf(w, "=== %s ===\n", info.Source)
		fmt.Fprintf(w, "Columns:    %s\n", strings.Join(info.Header, ", "))
		fmt.Fprintf(w, "Rows:       %d\n", info.Rows)
		fmt.Fprintf(w, "Key column: %s (%d distinct)\n", info.KeyColumn, info.Keys)
		if info.Undefined > 0 {
			color.New(color.FgYellow).Fprintf(w, "No key:     %d rows\n", info.Undefined)
		}
		if len(info.Duplicates) == 0 {
			color.New(color.FgGreen).Fprintln(w, "Duplicates: none")
			return nil
		}
		keys := make([]string, len(info.Duplicates))
		for i, k := range info.Duplicates {
			keys[i] = report.FormatKey(k)
		}
		color.New(color.FgRed).Fprintf(w, "Duplicates: %s\n", strings.Join(keys, ", "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectKey, "key", "", "Key column (defaults to diff.key_column)")
}
