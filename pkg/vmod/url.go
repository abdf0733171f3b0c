// Package vmod implements the virtual content module protocol: recognizing
// content module URLs, reading and validating the underlying entry, and
// synthesizing the module source served to the bundler.
package vmod

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ContentFlag is the query parameter marking a module request as content.
const ContentFlag = "loess-content"

// DefaultExtensions is the allow-list of content file extensions.
var DefaultExtensions = []string{".md", ".mdx", ".markdown"}

// splitQuery separates a module URL into its file path and raw query.
func splitQuery(rawURL string) (path, query string) {
	path, query, _ = strings.Cut(rawURL, "?")
	return path, query
}

// FilePath resolves the real file path of a module request, independent of
// query parameters.
func FilePath(rawURL string) string {
	path, _ := splitQuery(rawURL)
	return path
}

// IsContentURL reports whether rawURL carries the content marker flag and an
// allowed extension. Non-matching requests are passed through untouched by
// the loader. An empty exts slice falls back to DefaultExtensions.
func IsContentURL(rawURL string, exts []string) bool {
	path, query := splitQuery(rawURL)
	if query == "" {
		return false
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return false
	}
	if _, ok := values[ContentFlag]; !ok {
		return false
	}

	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range exts {
		if ext == allowed {
			return true
		}
	}
	return false
}
