package domain

import "github.com/aretw0/loess/pkg/schema"

// ConfigStatus is the discriminant of the ConfigState union.
type ConfigStatus string

const (
	StatusLoading ConfigStatus = "loading"
	StatusLoaded  ConfigStatus = "loaded"
	StatusError   ConfigStatus = "error"
)

// ConfigState is the tagged union over the schema configuration lifecycle.
// Exactly one variant holds at any time: Config is set only when loaded,
// Err only on error. "error" is a terminal value within the union, not an
// exception; a later file event resets the state back to loading.
type ConfigState struct {
	Status ConfigStatus
	Config *ContentConfig
	Err    error
}

// Loading returns the loading variant.
func Loading() ConfigState {
	return ConfigState{Status: StatusLoading}
}

// Loaded returns the loaded variant carrying the new configuration.
func Loaded(cfg *ContentConfig) ConfigState {
	return ConfigState{Status: StatusLoaded, Config: cfg}
}

// Failed returns the error variant carrying the evaluation failure.
func Failed(err error) ConfigState {
	return ConfigState{Status: StatusError, Err: err}
}

// Settled reports whether the state has left loading.
func (s ConfigState) Settled() bool {
	return s.Status != StatusLoading
}

// ContentConfig maps collection names to their schema descriptors.
// Immutable once produced; replaced wholesale on each regeneration.
type ContentConfig struct {
	Collections map[string]CollectionConfig
}

// CollectionConfig describes one named collection.
type CollectionConfig struct {
	Schema schema.Schema
}

// Collection looks up a collection by name. Safe on a nil receiver, which
// behaves as an empty configuration.
func (c *ContentConfig) Collection(name string) (CollectionConfig, bool) {
	if c == nil {
		return CollectionConfig{}, false
	}
	col, ok := c.Collections[name]
	return col, ok
}
