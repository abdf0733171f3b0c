package loess

import (
	"context"
	"log/slog"

	"github.com/aretw0/loess/internal/logging"
	"github.com/aretw0/loess/pkg/adapters/memory"
	"github.com/aretw0/loess/pkg/config"
	"github.com/aretw0/loess/pkg/domain"
	"github.com/aretw0/loess/pkg/generator"
	"github.com/aretw0/loess/pkg/ports"
	"github.com/aretw0/loess/pkg/vmod"
)

// Version is the current release of the Loess library.
var Version = "0.1.0"

// Pipeline is the high-level entry point for the Loess library. It wires the
// generator, config observable, virtual module loader and module graph into
// one live content-collection pipeline.
type Pipeline struct {
	Paths     domain.ContentPaths
	Generator *generator.Generator
	Loader    *vmod.Loader
	Graph     ports.ModuleGraph

	configLoader ports.ConfigLoader
	hooks        domain.PipelineHooks
	exts         []string
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom structured logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithGraph injects a custom module graph, bypassing the default in-memory one.
func WithGraph(graph ports.ModuleGraph) Option {
	return func(p *Pipeline) { p.Graph = graph }
}

// WithConfigLoader injects a custom schema configuration source.
func WithConfigLoader(loader ports.ConfigLoader) Option {
	return func(p *Pipeline) { p.configLoader = loader }
}

// WithHooks registers observability callbacks across the pipeline.
func WithHooks(hooks domain.PipelineHooks) Option {
	return func(p *Pipeline) { p.hooks = hooks }
}

// WithExtensions overrides the content extension allow-list.
func WithExtensions(exts []string) Option {
	return func(p *Pipeline) { p.exts = exts }
}

// New initializes a new Pipeline rooted at contentDir.
// By default it uses the conventional collections.yaml loader and an
// in-memory module graph.
func New(contentDir string, opts ...Option) (*Pipeline, error) {
	paths, err := domain.ResolvePaths(contentDir)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		Paths: paths,
		exts:  vmod.DefaultExtensions,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.Graph == nil {
		p.Graph = memory.NewGraph()
	}
	if p.configLoader == nil {
		p.configLoader = config.New(paths.ConfigFile)
	}

	p.Generator = generator.New(paths, p.configLoader, p.Graph,
		generator.WithLogger(p.logger),
		generator.WithHooks(p.hooks),
		generator.WithExtensions(p.exts),
	)
	p.Loader = vmod.NewLoader(paths, p.Generator.State(),
		vmod.WithLogger(p.logger),
		vmod.WithHooks(p.hooks),
		vmod.WithExtensions(p.exts),
	)

	return p, nil
}

// Init performs the startup load of the schema configuration, deferring it
// when the content root does not exist yet.
func (p *Pipeline) Init(ctx context.Context) error {
	return p.Generator.Init(ctx)
}

// QueueEvent feeds one watcher notification into the pipeline.
func (p *Pipeline) QueueEvent(e domain.Event) {
	p.Generator.QueueEvent(e)
}

// Load resolves a virtual content module request.
func (p *Pipeline) Load(ctx context.Context, rawURL string) (*vmod.Module, error) {
	return p.Loader.Load(ctx, rawURL)
}

// Settle blocks until every queued event has been fully processed.
func (p *Pipeline) Settle() {
	p.Generator.Settle()
}
