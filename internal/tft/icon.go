package tft

import "strings"

const assetRoot = "/lol-game-data/assets/"

// IconResolver maps upstream asset paths to absolute CDN URLs.
type IconResolver struct {
	base string
}

// NewIconResolver creates a resolver that prefixes resolved paths with base.
func NewIconResolver(base string) *IconResolver {
	return &IconResolver{base: strings.TrimSuffix(base, "/")}
}

// Resolve strips the known asset-root prefix, lowercases the remainder and
// rewrites a trailing texture extension to .png. Empty input yields empty
// output rather than a fabricated URL.
func (r *IconResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}

	clean := strings.ReplaceAll(path, assetRoot, "")
	clean = strings.ToLower(clean)

	if ext := strings.LastIndex(clean, "."); ext >= 0 {
		switch clean[ext:] {
		case ".tex", ".dds":
			clean = clean[:ext] + ".png"
		}
	}

	return r.base + "/" + clean
}
