// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvtherm_runs_total",
			Help: "Total number of simulation runs",
		},
		[]string{"status"}, // ok, invalid, canceled, failed
	)

	r.RunDurationSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvtherm_run_duration_seconds",
			Help:    "Wall-clock duration of simulation runs in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
		[]string{"status"},
	)

	r.StepsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lvtherm_steps_total",
			Help: "Total number of explicit Euler steps performed",
		},
	)

	r.StepsPerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvtherm_steps_per_run",
			Help:    "Number of integration steps per completed run",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		},
	)
}
