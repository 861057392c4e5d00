// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn          = DefaultIDFn ("0","1","2",...)
//   - rng           = nil (deterministic unless seeded)
//   - capacitance   = 1000 J/K
//   - temperature   = 20 °C, jitter 0
//   - power         = 0 W
//   - resistance    = 1 K/W, kind bi
//   - timeStep      = 1 s, totalTime = 60 s

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtherm/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	capacitance float64
	temperature float64
	jitter      float64
	power       float64

	resistance float64
	kind       core.Kind

	timeStep  float64
	totalTime float64
}

const (
	defaultCapacitance = 1000.0
	defaultTemperature = 20.0
	defaultResistance  = 1.0
	defaultTimeStep    = 1.0
	defaultTotalTime   = 60.0
)

// newBuilderConfig returns the defaults with opts applied in order
// (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		capacitance: defaultCapacitance,
		temperature: defaultTemperature,
		resistance:  defaultResistance,
		kind:        core.KindBi,
		timeStep:    defaultTimeStep,
		totalTime:   defaultTotalTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
