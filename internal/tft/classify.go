package tft

import (
	"regexp"
	"strings"

	"github.com/comps-gg/tft-cli/internal/model"
)

// statTierPattern matches generated stat-tier filler items like
// TFT9_Item_ADTier3; these never appear in the shop.
var statTierPattern = regexp.MustCompile(`_(AD|AP|AS|ADAP|Health|ArmorMR)Tier\d+$`)

// Classifier assigns each upstream item record to one of the five published
// categories, or rejects it. The rule cascade is strictly ordered; earlier
// rules short-circuit, and the order is load-bearing.
type Classifier struct {
	tables    Tables
	setNumber string
	setPrefix string
}

// NewClassifier creates a classifier for the given set.
func NewClassifier(tables Tables, setNumber, setPrefix string) *Classifier {
	return &Classifier{
		tables:    tables,
		setNumber: setNumber,
		setPrefix: setPrefix,
	}
}

// ShouldSkip is the pre-filter run before classification is attempted:
// augments, champion-bound items, tactician and support items, and stat-tier
// filler are upstream noise, never candidates.
func (c *Classifier) ShouldSkip(nameId string) bool {
	if strings.Contains(nameId, "Augment") {
		return true
	}
	if strings.Contains(nameId, "ChampionItem") {
		return true
	}
	if statTierPattern.MatchString(nameId) {
		return true
	}
	if contains(c.tables.TacticianItems, nameId) {
		return true
	}
	if contains(c.tables.SupportItems, nameId) {
		return true
	}
	return false
}

// ForceExcluded reports whether the normalized display name is on the
// artifact force-exclude list. A match rejects the item regardless of any
// other signal.
func (c *Classifier) ForceExcluded(nameKey string) bool {
	return contains(c.tables.ArtifactExcludeNames, nameKey)
}

// ForceIncluded reports whether the item is on the artifact force-include
// allowlist, by normalized name or id fragment.
func (c *Classifier) ForceIncluded(nameKey, nameId string) bool {
	if contains(c.tables.ArtifactIncludeNames, nameKey) {
		return true
	}
	idKey := NormalizeKey(nameId)
	for _, frag := range c.tables.ArtifactIncludeFragments {
		if frag != "" && strings.Contains(idKey, frag) {
			return true
		}
	}
	return false
}

// IsBaseComponent reports whether nameId is one of the fixed tier-1 crafting
// materials. Membership is decisive with or without metadata.
func (c *Classifier) IsBaseComponent(nameId string) bool {
	return c.tables.IsBaseComponent(nameId)
}

// LooksArtifactID reports whether an id alone identifies a likely artifact:
// Ornn items and ids under the artifact namespace may lack metadata entirely.
func (c *Classifier) LooksArtifactID(nameId string) bool {
	return strings.Contains(nameId, "Ornn") || strings.HasPrefix(nameId, c.tables.ArtifactIDPrefix)
}

// Classify runs the ordered cascade and returns the category, or ok=false to
// reject the item. meta may be nil; the caller has already applied the
// metadata gate for nil meta (see LooksArtifactID / ForceIncluded).
func (c *Classifier) Classify(nameId string, meta ItemMeta) (model.Category, bool) {
	// Artifact: id convention, explicit flag, or tag.
	isArtifact := strings.Contains(nameId, "Artifact") ||
		meta.IsArtifact() ||
		meta.HasTag("artifact", "ornn")
	if isArtifact {
		return model.CategoryArtifact, true
	}

	// Base component: fixed tier-1 list, metadata not consulted.
	if c.tables.IsBaseComponent(nameId) {
		return model.CategoryComponent, true
	}

	from := meta.RecipeComponents()
	hasSpatula := contains(from, c.tables.SpatulaID) || strings.Contains(nameId, "Spatula")

	// Emblem: spatula-crafted or emblem-tagged. Only items literally
	// following the current set's EmblemItem naming convention are kept;
	// emblem-looking items from other sets are dropped, not mis-tagged.
	isEmblem := hasSpatula ||
		strings.Contains(nameId, "Emblem") ||
		meta.HasTag("emblem")
	if isEmblem {
		if strings.HasPrefix(nameId, c.setPrefix+"Item_") && strings.Contains(nameId, "EmblemItem") {
			return model.CategoryEmblem, true
		}
		return "", false
	}

	// Combined: exactly two base components, no spatula.
	if len(from) == 2 && !hasSpatula &&
		c.tables.IsBaseComponent(from[0]) && c.tables.IsBaseComponent(from[1]) {
		return model.CategoryCombined, true
	}

	// Bilgewater / black market.
	looksSetScoped := strings.HasPrefix(nameId, c.setPrefix+"Item_")

	associatedTraits := meta.AssociatedTraits()
	looksTraitLinked := looksSetScoped ||
		len(associatedTraits) > 0 ||
		meta.GrantsTrait() ||
		meta.HasTag("trait", "traititem", "blackmarket", "black_market")

	if looksSetScoped {
		for _, frag := range c.tables.NonEquipableIDFragments {
			if strings.Contains(nameId, frag) {
				return "", false
			}
		}
	}

	if looksTraitLinked {
		if looksSetScoped {
			return model.CategoryBilgewater, true
		}
		// Without the id-prefix evidence, require the stronger
		// metadata-only signal.
		if len(associatedTraits) > 0 || meta.HasTag("trait", "traititem", "blackmarket", "black_market") {
			return model.CategoryBilgewater, true
		}
	}

	return "", false
}

// ShouldSkipBilge is the post-classification safety net for bilgewater items:
// upstream not-equipable flags or the hand-maintained blocklist drop an item
// even though it classified.
func (c *Classifier) ShouldSkipBilge(nameId, name string, meta ItemMeta) bool {
	if meta.NotEquipable() {
		return true
	}

	if contains(c.tables.BilgeBlocklistNames, NormalizeKey(name)) {
		return true
	}

	idKey := NormalizeKey(nameId)
	for _, frag := range c.tables.BilgeBlocklistIDFragments {
		if strings.Contains(idKey, frag) {
			return true
		}
	}
	return false
}

// ArtifactPriorityScore ranks duplicate artifact records sharing a display
// name; the highest-scoring id wins.
func (c *Classifier) ArtifactPriorityScore(nameId string, meta ItemMeta) int {
	score := 0
	if strings.Contains(nameId, "Ornn") {
		score += 3
	}
	if strings.Contains(nameId, "Artifact") {
		score += 2
	}
	if meta.IsArtifact() {
		score += 2
	}
	if meta.HasTag("artifact", "ornn") {
		score += 1
	}
	return score
}
