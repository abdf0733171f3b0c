// Package metrics exposes prometheus collectors for the dev server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/loess/pkg/domain"
)

var (
	// EventsProcessed counts watcher events seen by the generator, by kind.
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loess_watcher_events_total",
		Help: "Watcher events processed, partitioned by event kind.",
	}, []string{"kind"})

	// ConfigReloads counts schema configuration reloads by outcome.
	ConfigReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loess_config_reloads_total",
		Help: "Schema configuration reloads, partitioned by outcome.",
	}, []string{"outcome"})

	// ModulesInvalidated counts virtual modules dropped from the graph.
	ModulesInvalidated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loess_modules_invalidated_total",
		Help: "Virtual content modules invalidated after schema changes.",
	})

	// ModulesEmitted counts synthesized virtual modules.
	ModulesEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loess_modules_emitted_total",
		Help: "Virtual content modules synthesized by the loader.",
	})

	// LoadFailures counts per-file content load failures.
	LoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loess_load_failures_total",
		Help: "Content loads that failed for a single file.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// PipelineHooks returns hooks wiring the pipeline to these collectors.
func PipelineHooks() domain.PipelineHooks {
	return domain.PipelineHooks{
		OnEvent: func(e domain.Event) {
			EventsProcessed.WithLabelValues(string(e.Kind)).Inc()
		},
		OnConfigReload: func(s domain.ConfigState) {
			ConfigReloads.WithLabelValues(string(s.Status)).Inc()
		},
		OnInvalidate: func(string) {
			ModulesInvalidated.Inc()
		},
		OnModuleEmit: func(string) {
			ModulesEmitted.Inc()
		},
		OnLoadError: func(string, error) {
			LoadFailures.Inc()
		},
	}
}
