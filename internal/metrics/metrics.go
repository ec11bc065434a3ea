// Package metrics defines the prometheus collectors for catalog fetches and
// image probes, and an optional HTTP server exposing them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeAbandoned = "abandoned"
)

var (
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amphibians",
			Name:      "fetches_total",
			Help:      "Catalog fetches by outcome.",
		},
		[]string{"outcome"},
	)

	FetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amphibians",
			Name:      "fetch_failures_total",
			Help:      "Failed catalog fetches by reason.",
		},
		[]string{"reason"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "amphibians",
			Name:      "fetch_duration_seconds",
			Help:      "Catalog fetch latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	ImageProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amphibians",
			Name:      "image_probes_total",
			Help:      "Image availability probes by result.",
		},
		[]string{"status"},
	)
)

// ObserveFetch records one completed fetch. reason is ignored unless
// outcome is OutcomeError.
func ObserveFetch(outcome, reason string, elapsed time.Duration) {
	FetchesTotal.WithLabelValues(outcome).Inc()
	FetchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if outcome == OutcomeError {
		FetchFailuresTotal.WithLabelValues(reason).Inc()
	}
}
