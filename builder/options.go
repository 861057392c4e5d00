// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtherm/core"
)

// BuilderOption customizes the resolved builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node id generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic options. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG; use it to lock jittered fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacitance sets the capacitance of generated free nodes (J/K).
// Panics unless c is finite and > 0.
func WithCapacitance(c float64) BuilderOption {
	if !(c > 0) || math.IsInf(c, 0) {
		panic("builder: WithCapacitance(c<=0)")
	}
	return func(cfg *builderConfig) {
		cfg.capacitance = c
	}
}

// WithTemperature sets the initial temperature of generated nodes (°C).
// Panics below absolute zero.
func WithTemperature(tempC float64) BuilderOption {
	if !(tempC >= core.AbsoluteZeroC) || math.IsInf(tempC, 0) {
		panic("builder: WithTemperature(below absolute zero)")
	}
	return func(c *builderConfig) {
		c.temperature = tempC
	}
}

// WithTemperatureJitter adds N(0, sigma²) noise to each generated node's
// initial temperature. Requires an RNG at build time. Panics if sigma < 0.
func WithTemperatureJitter(sigma float64) BuilderOption {
	if !(sigma >= 0) {
		panic("builder: WithTemperatureJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithPower sets the power generation of generated free nodes (W).
func WithPower(w float64) BuilderOption {
	return func(c *builderConfig) {
		c.power = w
	}
}

// WithResistance sets the resistance of generated links (K/W).
// Panics unless r is finite and > 0.
func WithResistance(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithResistance(r<=0)")
	}
	return func(c *builderConfig) {
		c.resistance = r
	}
}

// WithKind sets the kind of links emitted by topology constructors.
// Panics on an unknown kind.
func WithKind(k core.Kind) BuilderOption {
	if _, err := k.MarshalText(); err != nil {
		panic("builder: WithKind(unknown)")
	}
	return func(c *builderConfig) {
		c.kind = k
	}
}

// WithTimeStep sets ModelInput.TimeStepS. Panics unless dt > 0.
func WithTimeStep(dt float64) BuilderOption {
	if !(dt > 0) {
		panic("builder: WithTimeStep(dt<=0)")
	}
	return func(c *builderConfig) {
		c.timeStep = dt
	}
}

// WithTotalTime sets ModelInput.TotalTimeS. Panics unless total > 0.
func WithTotalTime(total float64) BuilderOption {
	if !(total > 0) {
		panic("builder: WithTotalTime(total<=0)")
	}
	return func(c *builderConfig) {
		c.totalTime = total
	}
}
