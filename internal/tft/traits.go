package tft

import (
	"sort"

	"github.com/comps-gg/tft-cli/internal/model"
)

// BuildTraits filters the trait feed to the configured set and reshapes each
// trait's breakpoint table. setToken is the derived "TFTSet<N>" membership
// token; records from any other set are dropped on exact string match.
func BuildTraits(records []any, setToken string, icons *IconResolver) []model.Trait {
	traits := []model.Trait{}

	for _, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		traitSet, _ := rec["set"].(string)
		if traitSet != setToken {
			continue
		}

		bpList, _ := rec["conditional_trait_sets"].([]any)
		breakpoints := []model.Breakpoint{}
		for _, bpRaw := range bpList {
			bp, ok := bpRaw.(map[string]any)
			if !ok {
				continue
			}
			style, _ := bp["style_name"].(string)
			breakpoints = append(breakpoints, model.Breakpoint{
				Min:   intField(bp, "min_units"),
				Max:   intField(bp, "max_units"),
				Style: style,
			})
		}

		id, _ := rec["trait_id"].(string)
		name, _ := rec["display_name"].(string)
		iconPath, _ := rec["icon_path"].(string)

		traits = append(traits, model.Trait{
			ID:          id,
			Name:        name,
			Icon:        icons.Resolve(iconPath),
			Breakpoints: breakpoints,
		})
	}

	sort.Slice(traits, func(i, j int) bool {
		return traits[i].Name < traits[j].Name
	})

	return traits
}
