// Package metrics records scheduler outcomes as Prometheus metrics. A Recorder is optional:
// scheduler.New accepts a nil Recorder and every method on a nil *Recorder is a no-op, so
// callers that don't care about metrics never have to construct a registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder tracks scheduling outcomes: how many Schedule/ForceSchedule calls succeeded or
// failed (by reason), and how long each call took.
type Recorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRecorder builds a Recorder backed by its own registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	outcomes := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperdrive_schedule_outcomes_total",
			Help: "Total number of Schedule/ForceSchedule calls by outcome.",
		},
		[]string{"success", "failure_reason"},
	)

	duration := promauto.With(registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hyperdrive_scheduling_duration_msec",
			Help:    "Duration of a single Schedule/ForceSchedule call, in milliseconds.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	return &Recorder{registry: registry, outcomes: outcomes, duration: duration}
}

// Registry exposes the underlying registry so callers can wire a /metrics endpoint.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveOutcome records the outcome of one Schedule/ForceSchedule call. failureReason should
// be empty on success.
func (r *Recorder) ObserveOutcome(success bool, failureReason string, durationMsec int64) {
	if r == nil {
		return
	}

	successLabel := "true"
	if !success {
		successLabel = "false"
	}
	r.outcomes.WithLabelValues(successLabel, failureReason).Inc()
	r.duration.Observe(float64(durationMsec))
}
