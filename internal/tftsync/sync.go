package tftsync

import (
	"context"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/comps-gg/tft-cli/internal/config"
	"github.com/comps-gg/tft-cli/internal/fetcher"
	"github.com/comps-gg/tft-cli/internal/tft"
)

// Document file names, stable across releases; the web UI consumes these.
const (
	ChampionsFile = "champions.json"
	ItemsFile     = "items.json"
	TraitsFile    = "traits.json"
)

// Syncer drives one full rebuild of the three output documents. The pipeline
// is a single linear pass: comprehensive feed first, then champions, items
// and traits, each stage isolated from the others' failures.
type Syncer struct {
	cfg     config.SyncConfig
	fetcher fetcher.Fetcher
	log     *SyncLog // optional; nil disables run recording
}

// NewSyncer creates a syncer. syncLog may be nil.
func NewSyncer(cfg config.SyncConfig, f fetcher.Fetcher, syncLog *SyncLog) *Syncer {
	return &Syncer{cfg: cfg, fetcher: f, log: syncLog}
}

// Run performs a full sync. The returned error reflects only the mandatory
// comprehensive-feed fetch and setup; stage failures are logged and recorded
// but do not fail the run.
func (s *Syncer) Run(ctx context.Context) error {
	log := zap.L().With(zap.String("component", "tftsync"), zap.String("set", s.cfg.Set))

	tables, err := tft.LoadTables(s.cfg.TablesPath, s.cfg.Set)
	if err != nil {
		return eris.Wrap(err, "sync: load tables")
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return eris.Wrapf(err, "sync: create output dir %s", s.cfg.OutputDir)
	}

	log.Info("fetching comprehensive feed", zap.String("url", s.cfg.ComprehensiveURL))
	compCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.ComprehensiveTimeoutSecs)*time.Second)
	feed, err := fetcher.FetchJSONObject[tft.ComprehensiveFeed](compCtx, s.fetcher, s.cfg.ComprehensiveURL)
	cancel()
	if err != nil {
		return eris.Wrap(err, "sync: fetch comprehensive feed")
	}

	icons := tft.NewIconResolver(s.cfg.CDragonBase)

	s.runStage(ctx, log, "champions", func() (int, error) {
		return s.syncChampions(*feed, icons)
	})
	s.runStage(ctx, log, "items", func() (int, error) {
		return s.syncItems(ctx, *feed, tables, icons)
	})
	s.runStage(ctx, log, "traits", func() (int, error) {
		return s.syncTraits(ctx, icons)
	})

	return nil
}

// runStage executes one extraction stage, recording the outcome in the sync
// log. Failures are contained here; later stages still run.
func (s *Syncer) runStage(ctx context.Context, log *zap.Logger, stage string, fn func() (int, error)) {
	stageLog := log.With(zap.String("stage", stage))

	var runID string
	if s.log != nil {
		id, err := s.log.Start(ctx, stage, s.cfg.Set)
		if err != nil {
			stageLog.Warn("sync log unavailable", zap.Error(err))
		} else {
			runID = id
		}
	}

	start := time.Now()
	records, err := fn()
	elapsed := time.Since(start)

	if err != nil {
		stageLog.Error("stage failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		if runID != "" {
			if logErr := s.log.Fail(ctx, runID, err.Error()); logErr != nil {
				stageLog.Warn("failed to record stage failure", zap.Error(logErr))
			}
		}
		return
	}

	stageLog.Info("stage complete", zap.Int("records", records), zap.Duration("elapsed", elapsed))
	if runID != "" {
		if logErr := s.log.Complete(ctx, runID, int64(records)); logErr != nil {
			stageLog.Warn("failed to record stage completion", zap.Error(logErr))
		}
	}
}

func (s *Syncer) syncChampions(feed tft.ComprehensiveFeed, icons *tft.IconResolver) (int, error) {
	champions, err := tft.BuildChampions(feed, s.cfg.Set, icons)
	if err != nil {
		return 0, err
	}
	if err := writeDocument(s.cfg.OutputDir, ChampionsFile, champions); err != nil {
		return 0, err
	}
	return len(champions), nil
}

func (s *Syncer) syncItems(ctx context.Context, feed tft.ComprehensiveFeed, tables tft.Tables, icons *tft.IconResolver) (int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FeedTimeoutSecs)*time.Second)
	defer cancel()

	records, err := fetcher.FetchJSONArray[any](fetchCtx, s.fetcher, s.cfg.ItemsURL)
	if err != nil {
		return 0, eris.Wrap(err, "items: fetch feed")
	}

	index := tft.BuildItemIndex(feed, s.cfg.Set)
	cls := tft.NewClassifier(tables, s.cfg.Set, s.cfg.SetPrefix())
	items := tft.BuildItems(records, index, cls, icons)

	if err := writeDocument(s.cfg.OutputDir, ItemsFile, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Syncer) syncTraits(ctx context.Context, icons *tft.IconResolver) (int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FeedTimeoutSecs)*time.Second)
	defer cancel()

	records, err := fetcher.FetchJSONArray[any](fetchCtx, s.fetcher, s.cfg.TraitsURL)
	if err != nil {
		return 0, eris.Wrap(err, "traits: fetch feed")
	}

	traits := tft.BuildTraits(records, s.cfg.SetToken(), icons)

	if err := writeDocument(s.cfg.OutputDir, TraitsFile, traits); err != nil {
		return 0, err
	}
	return len(traits), nil
}
