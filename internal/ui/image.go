package ui

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/logging/events"
)

// PlaceholderImage replaces image references that cannot be resolved.
const PlaceholderImage = "https://images.unsplash.com/photo-1544717297-fa95b6ee9643?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"

// imageResolver checks weapon image references against a local asset
// directory. Remote references are passed through untouched; nothing is
// fetched.
type imageResolver struct {
	assets string
	stat   func(string) (os.FileInfo, error)
	cache  map[string]string
}

func newImageResolver(assets string) *imageResolver {
	return &imageResolver{
		assets: strings.TrimSpace(assets),
		stat:   os.Stat,
		cache:  map[string]string{},
	}
}

// Resolve returns the reference to display for weapon.
func (r *imageResolver) Resolve(weapon catalog.Weapon) string {
	ref := strings.TrimSpace(weapon.Image)
	if resolved, ok := r.cache[ref]; ok {
		return resolved
	}
	resolved := r.resolve(ref)
	if resolved == PlaceholderImage && ref != PlaceholderImage {
		events.Browser.ImageFallback(weapon.Name, ref)
	}
	r.cache[ref] = resolved
	return resolved
}

func (r *imageResolver) resolve(ref string) string {
	if ref == "" {
		return PlaceholderImage
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return PlaceholderImage
	}
	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return PlaceholderImage
		}
		return ref
	case "", "file":
	default:
		return ref
	}
	if r.assets == "" {
		return ref
	}
	local := filepath.Join(r.assets, filepath.FromSlash(strings.TrimPrefix(parsed.Path, "/")))
	info, err := r.stat(local)
	if err != nil || info.IsDir() {
		return PlaceholderImage
	}
	return local
}
