package content

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aretw0/loess/pkg/domain"
)

// EntryInfoFromPath derives the collection and id of a content file from its
// path relative to the content root. The first path segment names the
// collection; the remainder, extension stripped, is the id. Paths outside
// the root, directly under it, or naming the schema config file are not
// entries and return domain.ErrNotContentEntry.
func EntryInfoFromPath(paths domain.ContentPaths, file string) (domain.EntryInfo, error) {
	clean := filepath.Clean(file)
	if paths.IsConfigFile(clean) {
		return domain.EntryInfo{}, fmt.Errorf("%q: %w", file, domain.ErrNotContentEntry)
	}

	rel, err := filepath.Rel(paths.ContentDir, clean)
	if err != nil || !filepath.IsLocal(rel) {
		return domain.EntryInfo{}, fmt.Errorf("%q: %w", file, domain.ErrNotContentEntry)
	}

	rel = filepath.ToSlash(rel)
	collection, rest, ok := strings.Cut(rel, "/")
	if !ok || rest == "" {
		// A file directly under the content root belongs to no collection.
		return domain.EntryInfo{}, fmt.Errorf("%q: %w", file, domain.ErrNotContentEntry)
	}

	id := strings.TrimSuffix(rest, path.Ext(rest))
	if id == "" {
		return domain.EntryInfo{}, fmt.Errorf("%q: %w", file, domain.ErrNotContentEntry)
	}

	return domain.EntryInfo{ID: id, Collection: collection}, nil
}

// Slug returns the entry's slug: the front-matter "slug" override verbatim
// when present, otherwise the normalized form of the id.
func Slug(info domain.EntryInfo, data map[string]any) string {
	if s, ok := data["slug"].(string); ok && s != "" {
		return s
	}
	return Slugify(info.ID)
}

// Slugify normalizes s into a URL-safe slug. Path separators survive so
// nested ids keep their hierarchy; every other run of non-alphanumeric
// characters collapses into a single dash.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '/':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
