// Package fswatch adapts fsnotify to the pipeline's event model. It watches
// the content root recursively (and its parent, so the root's own arrival is
// observed) and forwards discrete add/change/unlink events to a sink,
// typically generator.QueueEvent.
package fswatch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/loess/pkg/domain"
)

// Watcher bridges fsnotify notifications into domain events.
type Watcher struct {
	sink   func(domain.Event)
	logger *slog.Logger

	fs *fsnotify.Watcher

	mu   sync.Mutex
	dirs map[string]struct{}
}

// New creates a Watcher forwarding events to sink.
func New(sink func(domain.Event), logger *slog.Logger) *Watcher {
	return &Watcher{
		sink:   sink,
		logger: logger,
		dirs:   make(map[string]struct{}),
	}
}

// Start begins watching root. The directory may not exist yet; its parent is
// watched so the root's creation is delivered as an addDir event. Watching
// stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, root string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.fs = fsw

	parent := filepath.Dir(root)
	if err := fsw.Add(parent); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", parent, err)
	}

	if _, err := os.Stat(root); err == nil {
		w.addTree(root)
	}

	go w.loop(ctx)
	return nil
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			w.logger.Warn("cannot watch directory", "dir", path, "err", err)
			return nil
		}
		w.mu.Lock()
		w.dirs[path] = struct{}{}
		w.mu.Unlock()
		return nil
	})
	if err != nil {
		w.logger.Warn("watch tree walk failed", "root", root, "err", err)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.fs.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}

// handle translates one fsnotify notification. Chmod-only notifications are
// dropped; everything else maps onto the five event kinds.
func (w *Watcher) handle(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)

	switch {
	case ev.Op.Has(fsnotify.Create):
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			// New directory: watch its subtree before reporting it, so
			// files already inside are not missed by later writes.
			w.addTree(path)
			w.sink(domain.Event{Kind: domain.EventAddDir, Path: path})
			return
		}
		w.sink(domain.Event{Kind: domain.EventAdd, Path: path})

	case ev.Op.Has(fsnotify.Write):
		w.sink(domain.Event{Kind: domain.EventChange, Path: path})

	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		w.mu.Lock()
		_, wasDir := w.dirs[path]
		delete(w.dirs, path)
		w.mu.Unlock()
		if wasDir {
			w.sink(domain.Event{Kind: domain.EventUnlinkDir, Path: path})
			return
		}
		w.sink(domain.Event{Kind: domain.EventUnlink, Path: path})
	}
}
