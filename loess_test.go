package loess_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/loess"
	"github.com/aretw0/loess/pkg/adapters/memory"
	"github.com/aretw0/loess/pkg/domain"
	"github.com/aretw0/loess/pkg/vmod"
)

type site struct {
	dir      string
	graph    *memory.Graph
	pipeline *loess.Pipeline
}

func newSite(t *testing.T) *site {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.MkdirAll(dir, 0755))

	graph := memory.NewGraph()
	pipeline, err := loess.New(dir, loess.WithGraph(graph))
	require.NoError(t, err)

	return &site{dir: dir, graph: graph, pipeline: pipeline}
}

func (s *site) write(t *testing.T, rel, body string) string {
	t.Helper()
	path := filepath.Join(s.dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func (s *site) load(t *testing.T, path string) *vmod.Module {
	t.Helper()
	url := path + "?" + vmod.ContentFlag
	mod, err := s.pipeline.Load(context.Background(), url)
	require.NoError(t, err)
	require.NotNil(t, mod)
	s.graph.Set(url, mod.Code)
	return mod
}

func TestPipeline_EndToEnd(t *testing.T) {
	s := newSite(t)
	post := s.write(t, "blog/post-1.md", "---\ntitle: Hi\n---\n# Hello\n")
	require.NoError(t, s.pipeline.Init(context.Background()))

	// 1. Load without a schema file: raw data passes through.
	mod := s.load(t, post)
	assert.Equal(t, "blog", mod.Entry.Collection)
	assert.Equal(t, "post-1", mod.Entry.ID)
	assert.Contains(t, mod.Code, `export const data = {"title":"Hi"};`)

	// 2. A schema file appears: the config event reloads schemas and drops
	// the cached module.
	cfgPath := s.write(t, domain.ConfigFileName, "collections:\n  blog:\n    fields:\n      title: string\n      weight: int\n")
	s.pipeline.QueueEvent(domain.Event{Kind: domain.EventAdd, Path: cfgPath})
	s.pipeline.Settle()

	_, cached := s.graph.Get(post + "?" + vmod.ContentFlag)
	assert.False(t, cached, "config change must drop cached content modules")

	// 3. The entry now fails its schema (missing weight), scoped to the file.
	_, err := s.pipeline.Load(context.Background(), post+"?"+vmod.ContentFlag)
	require.Error(t, err)
	assert.True(t, vmod.IsLoadError(err))
	assert.Contains(t, err.Error(), `"weight"`)

	// 4. Fixing the entry makes the next load succeed with coerced data.
	s.write(t, "blog/post-1.md", "---\ntitle: Hi\nweight: 2\n---\n# Hello\n")
	mod = s.load(t, post)
	assert.Contains(t, mod.Code, `"weight":2`)

	// 5. A sibling without the schema'd collection still loads raw.
	other := s.write(t, "notes/todo.md", "---\ndone: false\n---\n")
	mod = s.load(t, other)
	assert.Contains(t, mod.Code, `"done":false`)
}

func TestPipeline_BrokenSchemaDegradesGracefully(t *testing.T) {
	s := newSite(t)
	post := s.write(t, "blog/post-1.md", "---\ntitle: 42\n---\n")
	s.write(t, domain.ConfigFileName, "collections: [broken\n")
	require.NoError(t, s.pipeline.Init(context.Background()))

	state := s.pipeline.Generator.State().Get()
	require.Equal(t, domain.StatusError, state.Status)

	// Content loads fall back to unvalidated data instead of hard-failing.
	mod := s.load(t, post)
	assert.Contains(t, mod.Code, `"title":42`)
}

func TestPipeline_NonContentRequestPassesThrough(t *testing.T) {
	s := newSite(t)
	require.NoError(t, s.pipeline.Init(context.Background()))

	mod, err := s.pipeline.Load(context.Background(), filepath.Join(s.dir, "style.css"))
	assert.NoError(t, err)
	assert.Nil(t, mod)
}
