package tft

import "sort"

// ComprehensiveFeed is the decoded top-level comprehensive feed document.
type ComprehensiveFeed map[string]any

// BuildItemIndex builds a lookup table from the comprehensive feed, keyed by
// every identifier alias an item presents, so recipe/tag metadata for a given
// item id is an O(1) fetch.
//
// Candidate collections are merged in order: the global items collection,
// then the set-scoped sets[setNumber].items collection when present. Each may
// be a JSON array or a key→record map. The last write for an alias wins, so
// a set-scoped record silently overrides a global one sharing the alias.
func BuildItemIndex(feed ComprehensiveFeed, setNumber string) map[string]ItemMeta {
	index := make(map[string]ItemMeta)

	var candidates []any
	if items, ok := feed["items"]; ok {
		candidates = append(candidates, items)
	}
	if sets, ok := feed["sets"].(map[string]any); ok {
		if set, ok := sets[setNumber].(map[string]any); ok {
			if items, ok := set["items"]; ok {
				candidates = append(candidates, items)
			}
		}
	}

	for _, candidate := range candidates {
		switch c := candidate.(type) {
		case []any:
			for _, v := range c {
				if rec, ok := v.(map[string]any); ok {
					indexItem(index, rec, "")
				}
			}
		case map[string]any:
			// Sorted key order keeps alias collisions deterministic.
			keys := make([]string, 0, len(c))
			for k := range c {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if rec, ok := c[k].(map[string]any); ok {
					indexItem(index, rec, k)
				}
			}
		}
	}

	return index
}

// indexItem inserts the record under its apiName (falling back to nameId,
// then the map key) and additionally under its own nameId when present.
func indexItem(index map[string]ItemMeta, rec map[string]any, fallbackKey string) {
	apiName, _ := rec["apiName"].(string)
	if apiName == "" {
		apiName, _ = rec["nameId"].(string)
	}
	if apiName == "" {
		apiName = fallbackKey
	}
	if apiName != "" {
		index[apiName] = ItemMeta(rec)
	}

	if nameId, _ := rec["nameId"].(string); nameId != "" {
		index[nameId] = ItemMeta(rec)
	}
}
