package ports

import (
	"context"

	"github.com/aretw0/loess/pkg/domain"
)

// ConfigLoader reads and compiles the collection schema configuration.
type ConfigLoader interface {
	// Load returns the compiled configuration, or (nil, nil) when no
	// configuration exists (absence is not an error). A structural parse
	// or compile failure returns an error; the generator turns it into
	// the error state of the config observable.
	Load(ctx context.Context) (*domain.ContentConfig, error)
}
