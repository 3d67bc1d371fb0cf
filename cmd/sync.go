package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comps-gg/tft-cli/internal/fetcher"
	"github.com/comps-gg/tft-cli/internal/tftsync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the published game-data documents",
	Long: `Fetch the Community Dragon feeds and rewrite champions.json, items.json
and traits.json.

The exit code reflects only the mandatory comprehensive-feed fetch; a failure
in one of the champion, item or trait stages is logged and recorded but the
remaining stages still run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("command", "sync"))

		syncCfg := cfg.Sync
		if set, _ := cmd.Flags().GetString("set"); set != "" {
			syncCfg.Set = set
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			syncCfg.OutputDir = out
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			Timeout:      time.Duration(syncCfg.ComprehensiveTimeoutSecs) * time.Second,
			MaxRetries:   syncCfg.MaxRetries,
			RateLimiters: fetcher.DefaultRateLimiters(),
		})

		// A broken sync log never blocks a sync.
		syncLog, err := tftsync.OpenSyncLog(cfg.Store.Path)
		if err != nil {
			log.Warn("sync log unavailable", zap.Error(err))
			syncLog = nil
		} else {
			defer syncLog.Close()
		}

		s := tftsync.NewSyncer(syncCfg, f, syncLog)

		log.Info("starting sync",
			zap.String("set", syncCfg.Set),
			zap.String("out", syncCfg.OutputDir),
		)

		if err := s.Run(ctx); err != nil {
			return eris.Wrap(err, "sync")
		}

		fmt.Println("Sync complete")
		return nil
	},
}

func init() {
	syncCmd.Flags().String("set", "", "set number override (e.g. 16)")
	syncCmd.Flags().String("out", "", "output directory override")
	rootCmd.AddCommand(syncCmd)
}
