package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comps-gg/tft-cli/internal/tftsync"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent sync runs",
	Long:  "Displays the per-stage run history recorded by the sync command.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		syncLog, err := tftsync.OpenSyncLog(cfg.Store.Path)
		if err != nil {
			return eris.Wrap(err, "status: open sync log")
		}
		defer syncLog.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := syncLog.Recent(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "status")
		}

		if len(entries) == 0 {
			zap.L().Info("no sync runs recorded, run 'tft-cli sync' first")
			return nil
		}

		formatStatusEntries(os.Stdout, entries)
		return nil
	},
}

func init() {
	statusCmd.Flags().Int("limit", 20, "maximum runs to show")
	rootCmd.AddCommand(statusCmd)
}

// formatStatusEntries writes a tabular representation of sync runs to w.
func formatStatusEntries(out io.Writer, entries []tftsync.Entry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STAGE\tSET\tSTATUS\tSTARTED\tDURATION\tRECORDS\tERROR")
	_, _ = fmt.Fprintln(w, "-----\t---\t------\t-------\t--------\t-------\t-----")

	for _, e := range entries {
		dur := "-"
		if e.CompletedAt != nil {
			d := e.CompletedAt.Sub(e.StartedAt).Round(time.Second)
			dur = d.String()
		}

		errMsg := ""
		if e.Error != "" {
			errMsg = truncate(e.Error, 60)
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			e.Stage,
			e.SetNumber,
			e.Status,
			e.StartedAt.Format("2006-01-02 15:04"),
			dur,
			e.Records,
			errMsg,
		)
	}
	_ = w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
