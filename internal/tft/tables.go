package tft

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Tables holds the hand-maintained classification lists for one set release.
// These drift release-to-release while the classifier's control flow stays
// fixed, so they load from configuration rather than living inline.
//
// Name lists are matched against NormalizeKey output; id lists are exact
// nameId matches unless named Fragments.
type Tables struct {
	BaseComponents            []string `yaml:"base_components"`
	TacticianItems            []string `yaml:"tactician_items"`
	SupportItems              []string `yaml:"support_items"`
	BilgeBlocklistNames       []string `yaml:"bilge_blocklist_names"`
	BilgeBlocklistIDFragments []string `yaml:"bilge_blocklist_id_fragments"`
	ArtifactIncludeNames      []string `yaml:"artifact_include_names"`
	ArtifactIncludeFragments  []string `yaml:"artifact_include_id_fragments"`
	ArtifactExcludeNames      []string `yaml:"artifact_exclude_names"`
	NonEquipableIDFragments   []string `yaml:"non_equipable_id_fragments"`
	ArtifactIDPrefix          string   `yaml:"artifact_id_prefix"`
	SpatulaID                 string   `yaml:"spatula_id"`
}

// DefaultTables returns the built-in tables. They are maintained against set
// 16 but the set-agnostic lists (base components, tactician, support) hold
// across sets.
func DefaultTables() Tables {
	return Tables{
		BaseComponents: []string{
			"TFT_Item_BFSword",
			"TFT_Item_ChainVest",
			"TFT_Item_GiantsBelt",
			"TFT_Item_NeedlesslyLargeRod",
			"TFT_Item_NegatronCloak",
			"TFT_Item_RecurveBow",
			"TFT_Item_SparringGloves",
			"TFT_Item_Spatula",
			"TFT_Item_TearOfTheGoddess",
		},
		TacticianItems: []string{
			"TFT_Item_TacticiansRing",
			"TFT_Item_ForceOfNature",
			"TFT_Item_TacticiansScepter",
		},
		SupportItems: []string{
			"TFT_Item_Chalice",
			"TFT_Item_ChonccsChalice",
			"TFT_Item_ChonccsCrown",
			"TFT_Item_ChonccsSpork",
			"TFT_Item_LocketOfTheIronSolari",
			"TFT_Item_ZekesHerald",
			"TFT_Item_SupportKnightsVow",
			"TFT_Item_Moonstone",
			"TFT_Item_AegisOfTheLegion",
			"TFT_Item_BansheesVeil",
			"TFT_Item_RadiantVirtue",
			"TFT_Item_SentinelSwarm",
			"TFT_Item_TitanicHydra",
			"TFT_Item_EternalFlame",
		},
		// Bilgewater placeholders that appear in static exports but are not
		// equipable in-game. Fallback only; metadata flags win when present.
		BilgeBlocklistNames: []string{
			"brigand's dice",
			"captain's hat",
			"dreadway cannon",
			"haunted spyglass",
		},
		BilgeBlocklistIDFragments: []string{
			"brigandsdice",
			"captainshat",
			"dreadwaycannon",
			"hauntedspyglass",
		},
		// Set 16 artifact pool: force these into "artifact" even when
		// metadata fails to match.
		ArtifactIncludeNames: []string{
			"crown of demacia",
			"death's defiance",
			"flickerblades",
			"gambler's blade",
			"hullcrusher",
			"infinity force",
			"mogul's mail",
			"sniper's focus",
			"the darkin aegis",
			"the darkin bow",
			"the darkin scythe",
			"the darkin staff",
			"zhonya's paradox",
			"gold collector",
		},
		// Covers ids like TFT4_Item_OrnnTheCollector where the display name
		// reads "The Collector".
		ArtifactIncludeFragments: []string{
			"thecollector",
		},
		// Artifacts leaking from other sets in the current export. Known
		// upstream typos included.
		ArtifactExcludeNames: []string{
			"corrupt vampiric scepter",
			"forbidden idol",
			"forbbiden idol",
			"innervating locket",
			"lesser mirrored persona",
			"mending echoes",
			"mirrored persona",
			"shadow puppet",
			"spectral cutlass",
			"suspicious trench coat",
			"undending despair",
			"unending despair",
		},
		// Set-scoped shop/economy perks that share the item schema.
		NonEquipableIDFragments: []string{
			"Item_Piltover_",
			"Upgrade",
			"Refresh",
			"Reroll",
			"Duplicator",
			"FirstFree",
		},
		ArtifactIDPrefix: "TFT_Item_Artifact_",
		SpatulaID:        "TFT_Item_Spatula",
	}
}

// tablesFile is the on-disk shape of a tables override file: a mapping of
// set number to partial tables.
type tablesFile map[string]Tables

// LoadTables returns the tables for the given set. When path is empty the
// built-in defaults are returned. Otherwise the YAML file is read and any
// non-empty list for the set replaces its default.
func LoadTables(path, setNumber string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, eris.Wrapf(err, "tables: read %s", path)
	}

	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Tables{}, eris.Wrapf(err, "tables: parse %s", path)
	}

	override, ok := file[setNumber]
	if !ok {
		return tables, nil
	}

	tables.merge(override)
	return tables, nil
}

func (t *Tables) merge(o Tables) {
	if len(o.BaseComponents) > 0 {
		t.BaseComponents = o.BaseComponents
	}
	if len(o.TacticianItems) > 0 {
		t.TacticianItems = o.TacticianItems
	}
	if len(o.SupportItems) > 0 {
		t.SupportItems = o.SupportItems
	}
	if len(o.BilgeBlocklistNames) > 0 {
		t.BilgeBlocklistNames = o.BilgeBlocklistNames
	}
	if len(o.BilgeBlocklistIDFragments) > 0 {
		t.BilgeBlocklistIDFragments = o.BilgeBlocklistIDFragments
	}
	if len(o.ArtifactIncludeNames) > 0 {
		t.ArtifactIncludeNames = o.ArtifactIncludeNames
	}
	if len(o.ArtifactIncludeFragments) > 0 {
		t.ArtifactIncludeFragments = o.ArtifactIncludeFragments
	}
	if len(o.ArtifactExcludeNames) > 0 {
		t.ArtifactExcludeNames = o.ArtifactExcludeNames
	}
	if len(o.NonEquipableIDFragments) > 0 {
		t.NonEquipableIDFragments = o.NonEquipableIDFragments
	}
	if o.ArtifactIDPrefix != "" {
		t.ArtifactIDPrefix = o.ArtifactIDPrefix
	}
	if o.SpatulaID != "" {
		t.SpatulaID = o.SpatulaID
	}
}

// IsBaseComponent reports whether nameId is one of the tier-1 crafting items.
func (t *Tables) IsBaseComponent(nameId string) bool {
	return contains(t.BaseComponents, nameId)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
