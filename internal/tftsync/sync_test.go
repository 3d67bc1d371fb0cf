package tftsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comps-gg/tft-cli/internal/config"
	"github.com/comps-gg/tft-cli/internal/fetcher"
	"github.com/comps-gg/tft-cli/internal/model"
)

const comprehensiveFixture = `{
	"items": [
		{"apiName": "TFT_Item_BFSword", "composition": []},
		{"apiName": "TFT_Item_GiantSlayer", "composition": ["TFT_Item_BFSword", "TFT_Item_RecurveBow"]},
		{"apiName": "TFT16_Item_CutlassEmblemItem", "composition": ["TFT_Item_Spatula", "TFT_Item_NegatronCloak"]},
		{"apiName": "TFT_Item_Artifact_Foo", "isArtifact": true},
		{"apiName": "Ornn_Item_Foo", "isArtifact": true}
	],
	"sets": {
		"16": {
			"champions": [
				{"apiName": "TFT16_Gangplank", "name": "Gangplank", "cost": 3, "traits": ["Pirate"], "squareIcon": "/lol-game-data/assets/ASSETS/gp.tex"},
				{"apiName": "TFT16_Chest", "name": "Loot Chest", "cost": 0, "traits": []},
				{"apiName": "TFT16_Reward", "name": "Reward", "cost": 12, "traits": ["Pirate"]}
			],
			"items": []
		}
	}
}`

const itemsFixture = `[
	{"nameId": "TFT_Item_BFSword", "name": "B.F. Sword", "squareIconPath": "/lol-game-data/assets/ASSETS/bf.tex"},
	{"nameId": "TFT_Item_GiantSlayer", "name": "Giant Slayer", "squareIconPath": ""},
	{"nameId": "TFT16_Item_CutlassEmblemItem", "name": "Cutlass Emblem", "squareIconPath": ""},
	{"nameId": "TFT_Item_Artifact_Foo", "name": "Foo", "squareIconPath": ""},
	{"nameId": "Ornn_Item_Foo", "name": "Foo", "squareIconPath": ""},
	{"nameId": "TFT16_Augment_Noise", "name": "Noise", "squareIconPath": ""}
]`

const traitsFixture = `[
	{"trait_id": "TFT16_Pirate", "display_name": "Pirate", "icon_path": "/lol-game-data/assets/ASSETS/pirate.tex", "set": "TFTSet16",
	 "conditional_trait_sets": [{"min_units": 2, "max_units": 4, "style_name": "kBronze"}]},
	{"trait_id": "TFT15_Mage", "display_name": "Mage", "icon_path": "", "set": "TFTSet15", "conditional_trait_sets": []}
]`

type feedServer struct {
	srv        *httptest.Server
	failItems  bool
	failTraits bool
	failComp   bool
}

func newFeedServer() *feedServer {
	fs := &feedServer{}
	fs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/comprehensive.json":
			if fs.failComp {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(comprehensiveFixture))
		case "/tftitems.json":
			if fs.failItems {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(itemsFixture))
		case "/tfttraits.json":
			if fs.failTraits {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(traitsFixture))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return fs
}

func (fs *feedServer) config(outputDir string) config.SyncConfig {
	return config.SyncConfig{
		Set:                      "16",
		CDragonBase:              fs.srv.URL + "/cdn",
		ComprehensiveURL:         fs.srv.URL + "/comprehensive.json",
		ItemsURL:                 fs.srv.URL + "/tftitems.json",
		TraitsURL:                fs.srv.URL + "/tfttraits.json",
		OutputDir:                outputDir,
		ComprehensiveTimeoutSecs: 10,
		FeedTimeoutSecs:          10,
		MaxRetries:               1,
	}
}

func newTestSyncer(cfg config.SyncConfig) *Syncer {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 10 * time.Second, MaxRetries: 1})
	return NewSyncer(cfg, f, nil)
}

func readItems(t *testing.T, dir string) []model.Item {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ItemsFile))
	require.NoError(t, err)
	var items []model.Item
	require.NoError(t, json.Unmarshal(data, &items))
	return items
}

func TestSyncerRun(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()

	dir := t.TempDir()
	s := newTestSyncer(fs.config(dir))
	require.NoError(t, s.Run(context.Background()))

	// Champions: chest (no traits) and reward (cost 12) filtered out.
	var champs []model.Champion
	data, err := os.ReadFile(filepath.Join(dir, ChampionsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &champs))
	require.Len(t, champs, 1)
	assert.Equal(t, "TFT16_Gangplank", champs[0].ID)

	// Items: component, combined, emblem, one deduped artifact; augment gone.
	items := readItems(t, dir)
	require.Len(t, items, 4)
	byID := map[string]model.Item{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.Equal(t, model.CategoryComponent, byID["TFT_Item_BFSword"].Category)
	assert.Equal(t, model.CategoryCombined, byID["TFT_Item_GiantSlayer"].Category)
	assert.Equal(t, model.CategoryEmblem, byID["TFT16_Item_CutlassEmblemItem"].Category)
	// Ornn_ id outscores the Artifact_ id for the shared name "Foo".
	assert.Equal(t, model.CategoryArtifact, byID["Ornn_Item_Foo"].Category)
	assert.NotContains(t, byID, "TFT_Item_Artifact_Foo")

	// Traits: only the set-16 trait survives.
	var traits []model.Trait
	data, err = os.ReadFile(filepath.Join(dir, TraitsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &traits))
	require.Len(t, traits, 1)
	assert.Equal(t, "TFT16_Pirate", traits[0].ID)
}

func TestSyncerIdempotent(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()

	dir := t.TempDir()
	s := newTestSyncer(fs.config(dir))

	require.NoError(t, s.Run(context.Background()))
	first := map[string][]byte{}
	for _, name := range []string{ChampionsFile, ItemsFile, TraitsFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		first[name] = data
	}

	require.NoError(t, s.Run(context.Background()))
	for _, name := range []string{ChampionsFile, ItemsFile, TraitsFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, first[name], data, name)
	}
}

func TestSyncerComprehensiveFailureAborts(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()
	fs.failComp = true

	dir := t.TempDir()
	s := newTestSyncer(fs.config(dir))
	assert.Error(t, s.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, ChampionsFile))
	assert.True(t, os.IsNotExist(err))
}

func TestSyncerStageIsolation(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()
	fs.failItems = true

	dir := t.TempDir()
	s := newTestSyncer(fs.config(dir))

	// Item stage fails; the run still succeeds and the other documents land.
	require.NoError(t, s.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, ItemsFile))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, ChampionsFile))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, TraitsFile))
	assert.NoError(t, err)
}

func TestSyncerFailedStageLeavesPriorDocument(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()

	dir := t.TempDir()
	s := newTestSyncer(fs.config(dir))
	require.NoError(t, s.Run(context.Background()))
	before := readItems(t, dir)

	fs.failItems = true
	require.NoError(t, s.Run(context.Background()))
	after := readItems(t, dir)
	assert.Equal(t, before, after)
}

func TestSyncerRecordsRuns(t *testing.T) {
	fs := newFeedServer()
	defer fs.srv.Close()
	fs.failTraits = true

	dir := t.TempDir()
	syncLog, err := OpenSyncLog(filepath.Join(dir, "sync.db"))
	require.NoError(t, err)
	defer syncLog.Close()

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 10 * time.Second, MaxRetries: 1})
	s := NewSyncer(fs.config(dir), f, syncLog)
	require.NoError(t, s.Run(context.Background()))

	entries, err := syncLog.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	statuses := map[string]string{}
	for _, e := range entries {
		statuses[e.Stage] = e.Status
	}
	assert.Equal(t, "complete", statuses["champions"])
	assert.Equal(t, "complete", statuses["items"])
	assert.Equal(t, "failed", statuses["traits"])
}
