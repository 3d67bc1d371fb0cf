package tft

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/comps-gg/tft-cli/internal/model"
)

// maxChampionCost filters out non-combat roster entries (reward chests and
// similar) that share the champion schema but carry an out-of-band cost.
const maxChampionCost = 10

// BuildChampions extracts and reshapes the set's champion roster from the
// comprehensive feed. Entries without traits or costing more than
// maxChampionCost are dropped. Returns an error when the feed carries no
// champions for the set at all.
func BuildChampions(feed ComprehensiveFeed, setNumber string, icons *IconResolver) ([]model.Champion, error) {
	sets, _ := feed["sets"].(map[string]any)
	set, _ := sets[setNumber].(map[string]any)
	roster, _ := set["champions"].([]any)
	if len(roster) == 0 {
		return nil, eris.Errorf("champions: no champion data for set %s", setNumber)
	}

	champions := []model.Champion{}
	for _, raw := range roster {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		traits, _ := rec["traits"].([]any)
		if len(traits) == 0 {
			continue
		}

		cost := intField(rec, "cost")
		if cost > maxChampionCost {
			continue
		}

		iconPath, _ := rec["squareIcon"].(string)
		if iconPath == "" {
			iconPath, _ = rec["icon"].(string)
		}

		traitList := make([]model.ChampionTrait, 0, len(traits))
		for _, t := range traits {
			if s, ok := t.(string); ok {
				traitList = append(traitList, model.ChampionTrait{Name: s})
			}
		}

		apiName, _ := rec["apiName"].(string)
		name, _ := rec["name"].(string)

		champions = append(champions, model.Champion{
			ID:     apiName,
			Name:   name,
			Cost:   cost,
			Traits: traitList,
			Icon:   icons.Resolve(iconPath),
		})
	}

	sort.Slice(champions, func(i, j int) bool {
		if champions[i].Cost != champions[j].Cost {
			return champions[i].Cost < champions[j].Cost
		}
		return champions[i].Name < champions[j].Name
	})

	return champions, nil
}

// intField reads a numeric field, tolerating a missing or mistyped value.
func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
