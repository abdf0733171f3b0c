// Package generator orchestrates the content pipeline: it owns the config
// observable, consumes debounced watcher event batches, reloads the schema
// configuration when its file changes, and invalidates stale virtual
// modules in the bundler's module graph.
package generator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/loess/pkg/domain"
	"github.com/aretw0/loess/pkg/observable"
	"github.com/aretw0/loess/pkg/ports"
	"github.com/aretw0/loess/pkg/vmod"
)

// Generator is the pipeline orchestrator. It is the exclusive writer of the
// config observable; every other component only reads or subscribes.
type Generator struct {
	paths  domain.ContentPaths
	config ports.ConfigLoader
	graph  ports.ModuleGraph
	state  *observable.Observable[domain.ConfigState]
	hooks  domain.PipelineHooks
	logger *slog.Logger
	exts   []string

	batcher *Batcher

	// runMu serializes regeneration runs. Init loads on the caller's
	// goroutine while event batches load on the drain goroutine; without
	// this, a config event racing Init could interleave two reloads.
	runMu sync.Mutex

	mu          sync.Mutex
	initialized bool
	awaitingDir bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.PipelineHooks) Option {
	return func(g *Generator) { g.hooks = hooks }
}

// WithExtensions overrides the content extension allow-list used by the
// invalidation predicate.
func WithExtensions(exts []string) Option {
	return func(g *Generator) { g.exts = exts }
}

// New creates a Generator for the given paths, schema config source and
// module graph. The observable starts in the loading state; call Init to
// settle it.
func New(paths domain.ContentPaths, config ports.ConfigLoader, graph ports.ModuleGraph, opts ...Option) *Generator {
	g := &Generator{
		paths:  paths,
		config: config,
		graph:  graph,
		state:  observable.New(domain.Loading()),
		exts:   vmod.DefaultExtensions,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.batcher = NewBatcher(g.processBatch)
	return g
}

// State exposes the config observable for readers and subscribers.
func (g *Generator) State() *observable.Observable[domain.ConfigState] {
	return g.state
}

// Init performs the startup load of the schema configuration. If the content
// root does not exist yet, initialization is deferred until a directory-add
// event for exactly that path arrives (a one-shot arming, never re-armed).
func (g *Generator) Init(ctx context.Context) error {
	g.mu.Lock()
	if g.initialized {
		g.mu.Unlock()
		return nil
	}
	if _, err := os.Stat(g.paths.ContentDir); err != nil {
		g.awaitingDir = true
		g.mu.Unlock()
		g.logger.Info("content root missing, waiting for it to appear", "dir", g.paths.ContentDir)
		return nil
	}
	g.initialized = true
	g.mu.Unlock()

	g.reload(ctx)
	return nil
}

// QueueEvent accepts one raw watcher notification. Bursts are coalesced into
// batches; processing never overlaps.
func (g *Generator) QueueEvent(e domain.Event) {
	g.batcher.Queue(e)
}

// Settle blocks until all queued events have been fully processed, including
// the invalidation step of any config reload they triggered.
func (g *Generator) Settle() {
	g.batcher.Wait()
}

// processBatch handles one drained batch in arrival order.
func (g *Generator) processBatch(events []domain.Event) {
	ctx := context.Background()
	for _, e := range events {
		if g.hooks.OnEvent != nil {
			g.hooks.OnEvent(e)
		}
		switch {
		case e.Kind == domain.EventAddDir && g.paths.IsContentRoot(e.Path):
			g.onContentRootArrived(ctx)

		case !e.IsDir() && g.paths.IsConfigFile(e.Path):
			g.logger.Info("schema config changed, reloading", "event", e.Kind, "path", e.Path)
			// This reload covers the startup load too: a later Init (or a
			// root-arrival event) must not run a redundant one.
			g.markInitialized()
			g.reload(ctx)

		case g.paths.Contains(e.Path):
			// Informational: the loader re-reads files on the next load,
			// so content changes force no invalidation here.
			if g.hooks.OnContentChange != nil {
				g.hooks.OnContentChange(e)
			}

		default:
			g.logger.Debug("ignoring event outside content root", "event", e.Kind, "path", e.Path)
		}
	}
}

// onContentRootArrived runs the deferred startup load, exactly once.
func (g *Generator) onContentRootArrived(ctx context.Context) {
	g.mu.Lock()
	if !g.awaitingDir || g.initialized {
		g.mu.Unlock()
		return
	}
	g.awaitingDir = false
	g.initialized = true
	g.mu.Unlock()

	g.logger.Info("content root appeared, initializing", "dir", g.paths.ContentDir)
	g.reload(ctx)
}

// markInitialized records that the startup load has been covered, disarming
// any pending deferral.
func (g *Generator) markInitialized() {
	g.mu.Lock()
	g.initialized = true
	g.awaitingDir = false
	g.mu.Unlock()
}

// reload republishes loading, re-evaluates the schema configuration, drops
// every cached virtual content module, and only then publishes the settled
// outcome. Invalidation completes before the reload counts as settled, so a
// request served mid-reload can never observe a stale module. Runs never
// overlap, whichever goroutine triggers them.
func (g *Generator) reload(ctx context.Context) {
	g.runMu.Lock()
	defer g.runMu.Unlock()

	g.state.Set(domain.Loading())

	cfg, err := g.config.Load(ctx)

	var settled domain.ConfigState
	if err != nil {
		// Recovered into the error state, never propagated: content loads
		// degrade to unvalidated data until the schema file is fixed.
		g.logger.Error("schema config evaluation failed", "err", err)
		settled = domain.Failed(err)
	} else {
		if cfg == nil {
			cfg = &domain.ContentConfig{}
		}
		g.logger.Info("schema config loaded", "collections", len(cfg.Collections))
		settled = domain.Loaded(cfg)
	}

	g.invalidateContentModules(ctx)

	g.state.Set(settled)
	if g.hooks.OnConfigReload != nil {
		g.hooks.OnConfigReload(settled)
	}
}

// invalidateContentModules drops every known content module URL from the
// graph. Always all of them, never a subset: a schema change may alter
// validation results for any collection.
func (g *Generator) invalidateContentModules(ctx context.Context) {
	for _, url := range g.graph.URLs() {
		if !vmod.IsContentURL(url, g.exts) {
			continue
		}
		if err := g.graph.Invalidate(ctx, url); err != nil {
			g.logger.Error("module invalidation failed", "url", url, "err", err)
			continue
		}
		if g.hooks.OnInvalidate != nil {
			g.hooks.OnInvalidate(url)
		}
	}
}
