// Package config loads the collection schema configuration from the
// conventional collections.yaml file under the content root.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/loess/pkg/domain"
	"github.com/aretw0/loess/pkg/ports"
	"github.com/aretw0/loess/pkg/schema"
)

// fileDoc mirrors the YAML layout of collections.yaml:
//
//	collections:
//	  blog:
//	    fields:
//	      title: string
//	      tags: "[string]"
//	      draft: "bool?"
type fileDoc struct {
	Collections map[string]collectionDoc `mapstructure:"collections"`
}

type collectionDoc struct {
	Fields map[string]string `mapstructure:"fields"`
}

// FileLoader implements ports.ConfigLoader over a YAML file.
type FileLoader struct {
	Path string
}

var _ ports.ConfigLoader = (*FileLoader)(nil)

// New creates a loader for the given schema configuration file path.
func New(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load reads and compiles the configuration. A missing or unreadable file is
// "config absent" (nil, nil); malformed YAML or an invalid type descriptor
// is a structural error and propagates.
func (l *FileLoader) Load(ctx context.Context) (*domain.ContentConfig, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		// Absence (and any other read failure) means no validation, not a fault.
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.Path, err)
	}

	var parsed fileDoc
	if err := mapstructure.Decode(doc, &parsed); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.Path, err)
	}

	return compile(parsed.Collections)
}

// compile turns raw collection field descriptors into a ContentConfig.
func compile(collections map[string]collectionDoc) (*domain.ContentConfig, error) {
	cfg := &domain.ContentConfig{Collections: make(map[string]domain.CollectionConfig, len(collections))}
	for name, col := range collections {
		s, err := schema.ParseTypeMap(col.Fields)
		if err != nil {
			return nil, fmt.Errorf("collection %q: %w", name, err)
		}
		cfg.Collections[name] = domain.CollectionConfig{Schema: s}
	}
	return cfg, nil
}
