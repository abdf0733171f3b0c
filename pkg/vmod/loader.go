package vmod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/loess/pkg/content"
	"github.com/aretw0/loess/pkg/domain"
	"github.com/aretw0/loess/pkg/observable"
	"github.com/aretw0/loess/pkg/schema"
)

// Loader intercepts content-tagged module requests and synthesizes their
// module source. Non-matching requests pass through (nil, nil).
type Loader struct {
	paths  domain.ContentPaths
	state  *observable.Observable[domain.ConfigState]
	exts   []string
	hooks  domain.PipelineHooks
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithExtensions overrides the content extension allow-list.
func WithExtensions(exts []string) LoaderOption {
	return func(l *Loader) { l.exts = exts }
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.PipelineHooks) LoaderOption {
	return func(l *Loader) { l.hooks = hooks }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader reading entries under paths and observing the
// config state owned by the generator.
func NewLoader(paths domain.ContentPaths, state *observable.Observable[domain.ConfigState], opts ...LoaderOption) *Loader {
	l := &Loader{
		paths: paths,
		state: state,
		exts:  DefaultExtensions,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// Matches reports whether rawURL is a content module request for this loader.
func (l *Loader) Matches(rawURL string) bool {
	return IsContentURL(rawURL, l.exts)
}

// Load resolves a module request. It returns (nil, nil) for requests that are
// not content modules, a *LoadError for failures scoped to the requested file,
// and the synthesized module otherwise. A load issued while the config state
// is loading suspends until the state settles, then uses that snapshot.
func (l *Loader) Load(ctx context.Context, rawURL string) (*Module, error) {
	if !l.Matches(rawURL) {
		return nil, nil
	}
	file := FilePath(rawURL)

	info, err := content.EntryInfoFromPath(l.paths, file)
	if err != nil {
		// Not mappable to a collection entry: fall through silently so
		// upstream resolution can handle the request.
		l.logger.Debug("skipping non-entry module request", "url", rawURL)
		return nil, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, l.fail(rawURL, &LoadError{File: file, Err: err})
	}

	parsed, err := content.ParseFrontmatter(raw)
	if err != nil {
		return nil, l.fail(rawURL, &LoadError{File: file, Collection: info.Collection, Err: err})
	}

	info.Slug = content.Slug(info, parsed.Data)

	state, err := l.awaitSettled(ctx)
	if err != nil {
		return nil, err
	}

	data := parsed.Data
	if col, ok := state.Config.Collection(info.Collection); ok && state.Status == domain.StatusLoaded {
		coerced, err := schema.Coerce(col.Schema, parsed.Data)
		if err != nil {
			return nil, l.fail(rawURL, &LoadError{
				File:       file,
				Collection: info.Collection,
				Err:        fmt.Errorf("front-matter validation failed: %w", err),
			})
		}
		data = coerced
	}
	if state.Status == domain.StatusError {
		// Degrade to raw, unvalidated data: one bad schema file must not
		// hard-fail every content load.
		l.logger.Warn("schema config is broken, serving unvalidated data", "url", rawURL, "err", state.Err)
	}

	code, err := emitCode(info, parsed.Body, data, file, parsed.RawData)
	if err != nil {
		return nil, l.fail(rawURL, &LoadError{File: file, Collection: info.Collection, Err: err})
	}

	if l.hooks.OnModuleEmit != nil {
		l.hooks.OnModuleEmit(rawURL)
	}
	return &Module{URL: rawURL, Entry: info, Body: parsed.Body, Code: code}, nil
}

// awaitSettled returns the current config snapshot, suspending this load
// only (not other concurrent loads) while the state is loading. It always
// returns the post-resolution snapshot.
func (l *Loader) awaitSettled(ctx context.Context) (domain.ConfigState, error) {
	if state := l.state.Get(); state.Settled() {
		return state, nil
	}

	ch := make(chan domain.ConfigState, 1)
	unsubscribe := l.state.Subscribe(func(s domain.ConfigState) {
		if s.Settled() {
			select {
			case ch <- s:
			default:
			}
		}
	})
	defer unsubscribe()

	// The state may have settled between Get and Subscribe.
	if state := l.state.Get(); state.Settled() {
		return state, nil
	}

	select {
	case <-ctx.Done():
		return domain.ConfigState{}, ctx.Err()
	case state := <-ch:
		return state, nil
	}
}

func (l *Loader) fail(url string, err *LoadError) error {
	l.logger.Error("content load failed", "url", url, "err", err)
	if l.hooks.OnLoadError != nil {
		l.hooks.OnLoadError(url, err)
	}
	return err
}

// IsLoadError reports whether err is scoped to a single content file.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
