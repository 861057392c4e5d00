// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the simulator's Prometheus metrics. It implements
// sim.Recorder and is safe for concurrent use.
type Registry struct {
	// Run Metrics
	RunsTotal          *prometheus.CounterVec
	RunDurationSeconds *prometheus.HistogramVec
	StepsTotal         prometheus.Counter
	StepsPerRun        prometheus.Histogram

	// Validation Metrics
	ValidationErrorsTotal *prometheus.CounterVec
	RejectedModelsTotal   prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized on a fresh
// prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initRunMetrics()
	r.initValidationMetrics()

	return r
}

// Gatherer exposes the underlying registry for export.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
