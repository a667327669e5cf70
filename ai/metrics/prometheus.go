// Package metrics provides Prometheus metrics for the turn loop.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	// TurnsTotal counts completed turns by role.
	TurnsTotal = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "turns_total",
		Help:      "Completed turns by responder role",
	}, []string{"role"})

	// TurnDuration observes end-to-end turn latency in seconds.
	TurnDuration = promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: "agenthub",
		Name:      "turn_duration_seconds",
		Help:      "End-to-end turn latency",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	})

	// RoutingDecisions counts successful routing decisions by role.
	RoutingDecisions = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "routing_decisions_total",
		Help:      "Parsed routing decisions by selected role",
	}, []string{"role"})

	// RoutingFallbacks counts routing failures recovered with the default role.
	RoutingFallbacks = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "routing_fallbacks_total",
		Help:      "Routing failures recovered with the default role",
	})

	// ContinuityDecisions counts continuity outcomes ("continue" or "reset").
	ContinuityDecisions = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "continuity_decisions_total",
		Help:      "Continuity check outcomes",
	}, []string{"outcome"})

	// ResponderFailures counts responder executions recovered with an inline
	// error string, by role.
	ResponderFailures = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "responder_failures_total",
		Help:      "Responder failures recovered with an inline error string",
	}, []string{"role"})

	// ReviewStageFailures counts review pipeline stage failures by stage.
	ReviewStageFailures = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "review_stage_failures_total",
		Help:      "Review pipeline stage failures",
	}, []string{"stage"})

	// PersistFailures counts turn record append failures (logged only, never
	// surfaced to the caller).
	PersistFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "agenthub",
		Name:      "persist_failures_total",
		Help:      "Turn record append failures",
	})
)

// Handler returns the HTTP handler serving the metrics registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
