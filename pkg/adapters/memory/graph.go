// Package memory provides an in-process ports.ModuleGraph, used by the dev
// server and tests.
package memory

import (
	"context"
	"sync"
)

// Graph implements ports.ModuleGraph in memory.
// Safe for concurrent use.
type Graph struct {
	mu      sync.RWMutex
	modules map[string]string
}

// NewGraph creates an empty module graph.
func NewGraph() *Graph {
	return &Graph{
		modules: make(map[string]string),
	}
}

// Set records a loaded module's code under its URL.
func (g *Graph) Set(url, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.modules[url] = code
}

// Get returns the cached code for a URL, if still valid.
func (g *Graph) Get(url string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	code, ok := g.modules[url]
	return code, ok
}

// URLs returns every module URL currently known to the graph.
func (g *Graph) URLs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	urls := make([]string, 0, len(g.modules))
	for url := range g.modules {
		urls = append(urls, url)
	}
	return urls
}

// Invalidate drops the cached module for the given URL. Unknown URLs are a
// no-op.
func (g *Graph) Invalidate(ctx context.Context, url string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.modules, url)
	return nil
}

// Len reports the number of live modules.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.modules)
}
