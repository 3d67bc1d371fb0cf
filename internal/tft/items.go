package tft

import (
	"sort"

	"github.com/comps-gg/tft-cli/internal/model"
)

// BuildItems runs the full item pipeline over the flat item feed: per-record
// filtering, classification, artifact dedupe and the final category/name
// sort. records is the decoded feed; junk entries are skipped silently.
func BuildItems(records []any, index map[string]ItemMeta, cls *Classifier, icons *IconResolver) []model.Item {
	items := []model.Item{}
	seen := make(map[string]bool)
	dedupe := newArtifactDeduper()

	for _, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		nameId, _ := rec["nameId"].(string)
		if nameId == "" || seen[nameId] {
			continue
		}
		seen[nameId] = true

		if cls.ShouldSkip(nameId) {
			continue
		}

		name, present := rec["name"].(string)
		if !present {
			name = nameId
		}
		if name == "" || name == "null" {
			continue
		}

		nameKey := NormalizeKey(name)

		// Force-excluded names are cut before metadata is even consulted.
		if cls.ForceExcluded(nameKey) {
			continue
		}

		meta := index[nameId]

		// Without metadata there is no reliable signal for any category
		// except artifacts, identifiable by id/name conventions alone, and
		// the fixed base-component list, which needs no metadata at all.
		if meta == nil {
			if !cls.LooksArtifactID(nameId) &&
				!cls.ForceIncluded(nameKey, nameId) &&
				!cls.IsBaseComponent(nameId) {
				continue
			}
		}

		category, classified := cls.Classify(nameId, meta)

		// Force-include overrides whatever the cascade decided.
		if cls.ForceIncluded(nameKey, nameId) {
			category, classified = model.CategoryArtifact, true
		}

		if !classified {
			continue
		}

		if category == model.CategoryBilgewater && cls.ShouldSkipBilge(nameId, name, meta) {
			continue
		}

		// Defense in depth: the force-include override must not
		// re-introduce a blocked name.
		if category == model.CategoryArtifact && cls.ForceExcluded(nameKey) {
			continue
		}

		iconPath, _ := rec["squareIconPath"].(string)
		item := model.Item{
			ID:       nameId,
			Name:     name,
			Icon:     icons.Resolve(iconPath),
			Category: category,
			Recipe:   meta.Composition(),
		}

		if category == model.CategoryArtifact {
			items = dedupe.place(items, nameKey, cls.ArtifactPriorityScore(nameId, meta), item)
			continue
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category.Rank() != items[j].Category.Rank() {
			return items[i].Category.Rank() < items[j].Category.Rank()
		}
		return items[i].Name < items[j].Name
	})

	return items
}
