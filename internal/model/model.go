package model

// Category is the classification bucket an item is published under.
type Category string

const (
	CategoryComponent  Category = "component"
	CategoryCombined   Category = "combined"
	CategoryBilgewater Category = "bilgewater"
	CategoryEmblem     Category = "emblem"
	CategoryArtifact   Category = "artifact"
)

// categoryRank orders categories in the published items document.
var categoryRank = map[Category]int{
	CategoryComponent:  0,
	CategoryCombined:   1,
	CategoryBilgewater: 2,
	CategoryEmblem:     3,
	CategoryArtifact:   4,
}

// Rank returns the sort rank of the category. Unknown categories sort last.
func (c Category) Rank() int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return 99
}

// Valid reports whether c is one of the five published categories.
func (c Category) Valid() bool {
	_, ok := categoryRank[c]
	return ok
}

// Item is one entry in the published items document.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Category Category `json:"category"`
	Recipe   []string `json:"recipe"`
}

// ChampionTrait is a trait reference on a champion.
type ChampionTrait struct {
	Name string `json:"name"`
}

// Champion is one entry in the published champions document.
type Champion struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Cost   int             `json:"cost"`
	Traits []ChampionTrait `json:"traits"`
	Icon   string          `json:"icon"`
}

// Breakpoint is a trait activation threshold mapped to a style tier.
type Breakpoint struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Style string `json:"style"`
}

// Trait is one entry in the published traits document.
type Trait struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	Breakpoints []Breakpoint `json:"breakpoints"`
}
