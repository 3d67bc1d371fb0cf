package tft

import "github.com/comps-gg/tft-cli/internal/model"

// artifactDeduper collapses artifact records sharing a normalized display
// name. Upstream carries the same conceptual artifact under multiple ids
// (legacy id plus a current Ornn_-prefixed one); the record with the highest
// priority score wins, ties keeping the first-seen record in place.
type artifactDeduper struct {
	byName map[string]int // name key -> index in the output slice
	scores map[string]int // name key -> kept record's score
}

func newArtifactDeduper() *artifactDeduper {
	return &artifactDeduper{
		byName: make(map[string]int),
		scores: make(map[string]int),
	}
}

// place appends the item when its name key is new, replaces the kept record
// in place when the new score is strictly greater, and otherwise drops it.
func (d *artifactDeduper) place(items []model.Item, nameKey string, score int, item model.Item) []model.Item {
	idx, seen := d.byName[nameKey]
	if !seen {
		d.byName[nameKey] = len(items)
		d.scores[nameKey] = score
		return append(items, item)
	}

	if score > d.scores[nameKey] {
		items[idx] = item
		d.scores[nameKey] = score
	}
	return items
}
