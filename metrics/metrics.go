// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvtherm/sim"
	"github.com/katalvlaran/lvtherm/validation"
	"github.com/prometheus/client_golang/prometheus"
)

var _ sim.Recorder = (*Registry)(nil)

// ObserveRun records a run outcome
func (r *Registry) ObserveRun(status string, elapsed time.Duration, steps int) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDurationSeconds.WithLabelValues(status).Observe(elapsed.Seconds())
	r.StepsTotal.Add(float64(steps))
	if status == sim.StatusOK {
		r.StepsPerRun.Observe(float64(steps))
	}
}

// ObserveValidationErrors records the errors of a rejected model
func (r *Registry) ObserveValidationErrors(errs validation.Errors) {
	if len(errs) == 0 {
		return
	}
	r.RejectedModelsTotal.Inc()
	for _, e := range errs {
		r.ValidationErrorsTotal.WithLabelValues(e.Name()).Inc()
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// for collection by the node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}

	return nil
}
