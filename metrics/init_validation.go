// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initValidationMetrics() {
	r.ValidationErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvtherm_validation_errors_total",
			Help: "Total number of validation errors by kind",
		},
		[]string{"kind"},
	)

	r.RejectedModelsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lvtherm_rejected_models_total",
			Help: "Total number of models rejected by validation",
		},
	)
}
