// Package http serves virtual content modules over HTTP for the dev server.
package http

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/loess"
	"github.com/aretw0/loess/internal/metrics"
	"github.com/aretw0/loess/pkg/adapters/memory"
	"github.com/aretw0/loess/pkg/vmod"
)

// Server resolves module requests through the pipeline, caching emitted
// modules in the graph until the generator invalidates them.
type Server struct {
	Pipeline *loess.Pipeline
	Graph    *memory.Graph
	Logger   *slog.Logger
}

// NewHandler creates the dev server HTTP handler.
func NewHandler(pipeline *loess.Pipeline, graph *memory.Graph, logger *slog.Logger) http.Handler {
	s := &Server{Pipeline: pipeline, Graph: graph, Logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/modules/*", s.handleModule)
	return r
}

// handleModule serves one virtual module. The module URL is the absolute
// content file path plus the request's query string, so the content marker
// flag travels with the request.
func (s *Server) handleModule(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	file := filepath.Join(s.Pipeline.Paths.ContentDir, filepath.FromSlash(rel))

	url := file
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	if code, ok := s.Graph.Get(url); ok {
		writeModule(w, code)
		return
	}

	mod, err := s.Pipeline.Load(r.Context(), url)
	if err != nil {
		if vmod.IsLoadError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.Logger.Error("module load failed", "url", url, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if mod == nil {
		http.NotFound(w, r)
		return
	}

	s.Graph.Set(url, mod.Code)
	writeModule(w, mod.Code)
}

func writeModule(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(code))
}
