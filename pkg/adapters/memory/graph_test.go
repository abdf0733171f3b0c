package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/loess/pkg/adapters/memory"
	"github.com/aretw0/loess/pkg/ports"
)

var _ ports.ModuleGraph = (*memory.Graph)(nil)

func TestGraph_SetGetInvalidate(t *testing.T) {
	g := memory.NewGraph()

	g.Set("/a.md?loess-content", "export const id = \"a\";")

	code, ok := g.Get("/a.md?loess-content")
	assert.True(t, ok)
	assert.Contains(t, code, "export const id")

	assert.NoError(t, g.Invalidate(context.Background(), "/a.md?loess-content"))
	_, ok = g.Get("/a.md?loess-content")
	assert.False(t, ok)

	// Unknown URL is a no-op.
	assert.NoError(t, g.Invalidate(context.Background(), "/ghost.md"))
}

func TestGraph_URLs(t *testing.T) {
	g := memory.NewGraph()
	g.Set("/a.md?loess-content", "a")
	g.Set("/b.md?loess-content", "b")
	g.Set("/style.css", "c")

	assert.Len(t, g.URLs(), 3)
	assert.Equal(t, 3, g.Len())
}
