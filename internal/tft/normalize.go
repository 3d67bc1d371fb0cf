package tft

import (
	"strings"
	"unicode"
)

var apostropheReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"´", "'", // acute accent
	"`", "'",
)

// NormalizeKey canonicalizes a display name or identifier for comparison:
// lowercase, trimmed, internal whitespace runs collapsed to a single space,
// and the common apostrophe variants mapped to ASCII. Total function.
func NormalizeKey(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	v = apostropheReplacer.Replace(v)

	var b strings.Builder
	b.Grow(len(v))
	space := false
	for _, r := range v {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
