package tft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItemIndexListShape(t *testing.T) {
	feed := ComprehensiveFeed{
		"items": []any{
			map[string]any{"apiName": "TFT_Item_BFSword", "nameId": "TFT_Item_BFSword_Alt"},
			map[string]any{"nameId": "TFT_Item_RecurveBow"},
			"junk entry",
		},
	}

	index := BuildItemIndex(feed, "16")

	// Indexed under both aliases when they differ.
	require.Contains(t, index, "TFT_Item_BFSword")
	require.Contains(t, index, "TFT_Item_BFSword_Alt")
	assert.Equal(t, index["TFT_Item_BFSword"]["apiName"], index["TFT_Item_BFSword_Alt"]["apiName"])

	assert.Contains(t, index, "TFT_Item_RecurveBow")
	assert.Len(t, index, 3)
}

func TestBuildItemIndexMapShape(t *testing.T) {
	feed := ComprehensiveFeed{
		"items": map[string]any{
			"TFT_Item_GiantsBelt": map[string]any{"composition": []any{}},
			"junk":                "not a record",
		},
	}

	index := BuildItemIndex(feed, "16")

	// Map key serves as the fallback alias for records lacking an id field.
	assert.Contains(t, index, "TFT_Item_GiantsBelt")
	assert.Len(t, index, 1)
}

func TestBuildItemIndexSetScopedOverridesGlobal(t *testing.T) {
	feed := ComprehensiveFeed{
		"items": []any{
			map[string]any{"apiName": "TFT16_Item_Foo", "source": "global"},
		},
		"sets": map[string]any{
			"16": map[string]any{
				"items": []any{
					map[string]any{"apiName": "TFT16_Item_Foo", "source": "set"},
				},
			},
		},
	}

	index := BuildItemIndex(feed, "16")
	require.Contains(t, index, "TFT16_Item_Foo")
	assert.Equal(t, "set", index["TFT16_Item_Foo"]["source"])
}

func TestBuildItemIndexOtherSetIgnored(t *testing.T) {
	feed := ComprehensiveFeed{
		"sets": map[string]any{
			"15": map[string]any{
				"items": []any{
					map[string]any{"apiName": "TFT15_Item_Foo"},
				},
			},
		},
	}

	index := BuildItemIndex(feed, "16")
	assert.Empty(t, index)
}

func TestBuildItemIndexEmptyFeed(t *testing.T) {
	assert.Empty(t, BuildItemIndex(ComprehensiveFeed{}, "16"))
	assert.Empty(t, BuildItemIndex(ComprehensiveFeed{"items": "junk"}, "16"))
}
