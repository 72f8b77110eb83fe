// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors for algorithm executions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Execution outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeTruncated = "truncated"
	OutcomeAnomaly   = "anomaly"
	OutcomeRejected  = "rejected"
)

// UnknownAlgorithm labels rejections of ids missing from the catalog.
const UnknownAlgorithm = "unknown"

// Recorder owns a private registry so tests and multiple servers never
// collide on the global one.
type Recorder struct {
	registry   *prometheus.Registry
	executions *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// New registers the lvtrace collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvtrace_executions_total",
				Help: "Algorithm executions by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvtrace_execution_steps",
				Help:    "Steps recorded per execution, before truncation",
				Buckets: prometheus.ExponentialBuckets(10, 4, 7),
			},
			[]string{"family"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvtrace_execution_duration_seconds",
				Help:    "Wall time spent running an algorithm",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}
	r.registry.MustRegister(r.executions, r.steps, r.duration)
	return r
}

// Observe records one finished execution.
func (r *Recorder) Observe(algorithm, family, outcome string, steps int, took time.Duration) {
	r.executions.WithLabelValues(algorithm, outcome).Inc()
	r.steps.WithLabelValues(family).Observe(float64(steps))
	r.duration.WithLabelValues(algorithm).Observe(took.Seconds())
}

// Reject records an execution refused before the engine ran.
func (r *Recorder) Reject(algorithm string) {
	r.executions.WithLabelValues(algorithm, OutcomeRejected).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
