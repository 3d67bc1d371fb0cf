package tft

import "strings"

// ItemMeta is one record from the comprehensive feed. Upstream makes no
// schema promises, so it stays a loose bag with accessors that tolerate
// missing and mistyped fields.
type ItemMeta map[string]any

// HasTag reports whether the record carries any of the wanted tags,
// case-insensitively, reading itemTags then tags.
func (m ItemMeta) HasTag(wanted ...string) bool {
	if m == nil {
		return false
	}

	raw, ok := m["itemTags"]
	if !ok {
		raw, ok = m["tags"]
	}
	if !ok {
		return false
	}

	list, ok := raw.([]any)
	if !ok {
		return false
	}

	for _, tag := range list {
		s, ok := tag.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(s)
		for _, w := range wanted {
			if s == strings.ToLower(w) {
				return true
			}
		}
	}
	return false
}

// IsArtifact reports whether the record's isArtifact flag is set.
func (m ItemMeta) IsArtifact() bool {
	if m == nil {
		return false
	}
	b, _ := m["isArtifact"].(bool)
	return b
}

// recipe field names, in preference order. First populated list wins.
var recipeFields = []string{"composition", "from", "components", "recipe"}

// RecipeComponents returns the component id list used for classification:
// the first recipe-like field that is a list, filtered to non-empty strings.
func (m ItemMeta) RecipeComponents() []string {
	if m == nil {
		return nil
	}

	for _, field := range recipeFields {
		raw, ok := m[field]
		if !ok || raw == nil {
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			continue
		}
		return stringList(list)
	}
	return nil
}

// Composition returns the raw composition list published as the output
// recipe. Unlike RecipeComponents it reads composition only.
func (m ItemMeta) Composition() []string {
	if m == nil {
		return []string{}
	}
	list, ok := m["composition"].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// AssociatedTraits returns the record's associated-trait list, reading
// associatedTraits, traits then trait. A bare string is coerced to a
// single-element list.
func (m ItemMeta) AssociatedTraits() []string {
	if m == nil {
		return nil
	}

	for _, field := range []string{"associatedTraits", "traits", "trait"} {
		raw, ok := m[field]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			if v != "" {
				return []string{v}
			}
			return nil
		case []any:
			return stringList(v)
		}
		return nil
	}
	return nil
}

// GrantsTrait reports whether the record indicates the item grants a trait.
func (m ItemMeta) GrantsTrait() bool {
	if m == nil {
		return false
	}
	for _, field := range []string{"trait", "traits", "grantsTrait", "grantTrait"} {
		if nonEmpty(m[field]) {
			return true
		}
	}
	return false
}

// notEquipableFlags covers every spelling upstream has used for "do not show
// this to players".
var notEquipableFlags = []string{
	"isNotEquipable",
	"notEquipable",
	"isNonEquipable",
	"nonEquipable",
	"isDisabled",
	"disabled",
	"isDeprecated",
	"deprecated",
	"isHidden",
	"hidden",
	"isTutorial",
	"tutorial",
	"isNYI",
	"nyi",
}

// NotEquipable reports whether any of the upstream not-equipable flags is
// set true.
func (m ItemMeta) NotEquipable() bool {
	if m == nil {
		return false
	}
	for _, flag := range notEquipableFlags {
		if b, _ := m[flag].(bool); b {
			return true
		}
	}
	return false
}

func stringList(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func nonEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case bool:
		return t
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
