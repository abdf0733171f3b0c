package domain

import (
	"fmt"
	"path/filepath"
)

// ConfigFileName is the conventional name of the schema configuration file,
// expected directly under the content root.
const ConfigFileName = "collections.yaml"

// ContentPaths holds the resolved location of the content root and of the
// optional schema configuration file. Immutable once computed; recomputed
// only on process restart.
type ContentPaths struct {
	ContentDir string
	ConfigFile string
}

// ResolvePaths computes ContentPaths from a content directory path.
// The directory does not need to exist yet; the generator arms itself to
// wait for its arrival.
func ResolvePaths(contentDir string) (ContentPaths, error) {
	if contentDir == "" {
		return ContentPaths{}, fmt.Errorf("content directory is required")
	}
	abs, err := filepath.Abs(contentDir)
	if err != nil {
		return ContentPaths{}, fmt.Errorf("invalid content directory %q: %w", contentDir, err)
	}
	return ContentPaths{
		ContentDir: abs,
		ConfigFile: filepath.Join(abs, ConfigFileName),
	}, nil
}

// IsConfigFile reports whether path refers to the schema configuration file.
func (p ContentPaths) IsConfigFile(path string) bool {
	return filepath.Clean(path) == p.ConfigFile
}

// IsContentRoot reports whether path refers to the content root itself.
func (p ContentPaths) IsContentRoot(path string) bool {
	return filepath.Clean(path) == p.ContentDir
}

// Contains reports whether path lies under the content root.
func (p ContentPaths) Contains(path string) bool {
	rel, err := filepath.Rel(p.ContentDir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
