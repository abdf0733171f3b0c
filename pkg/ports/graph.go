package ports

import "context"

// ModuleGraph is the bundler's live record of loaded modules.
// The core calls it only from the invalidation path: enumerate known URLs,
// then drop the cached module for each content URL.
type ModuleGraph interface {
	// URLs returns every module URL currently known to the graph.
	URLs() []string

	// Invalidate drops the cached module for the given URL so the next
	// request re-loads it. Unknown URLs are a no-op, not an error.
	Invalidate(ctx context.Context, url string) error
}
