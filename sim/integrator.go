// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
	"github.com/katalvlaran/lvtherm/system"
)

// Integrator advances a thermal network one explicit Euler step at a time.
// Callers wanting chunked or interruptible runs drive it directly; Run
// drives it to completion.
type Integrator struct {
	sys      *system.System
	conns    []core.Connection
	boundary []int
	dt       float64
	steps    int

	t matrix.Vector // kelvin
	q matrix.Vector // watts
}

// NewIntegrator builds the system matrices of in and the step-0 state.
// It does not validate in; see ValidateInputs.
func NewIntegrator(in core.ModelInput) (*Integrator, error) {
	sys, err := system.Build(in.Nodes, in.Connections)
	if err != nil {
		return nil, fmt.Errorf("NewIntegrator: %w", err)
	}
	var boundary []int
	for i, n := range in.Nodes {
		if n.IsBoundary {
			boundary = append(boundary, i)
		}
	}
	t := core.ToKelvin(core.Temperatures(in.Nodes))
	q, err := HeatTransfer(in.Connections, sys.Index, t)
	if err != nil {
		return nil, fmt.Errorf("NewIntegrator: %w", err)
	}

	return &Integrator{
		sys:      sys,
		conns:    in.Connections,
		boundary: boundary,
		dt:       in.TimeStepS,
		t:        t,
		q:        q,
	}, nil
}

// Step performs one transition. The error is only non-nil on a shape
// mismatch, which validated input never produces.
func (it *Integrator) Step() error {
	d, err := it.sys.Derivative(it.t)
	if err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	next, err := matrix.AddVec(it.t, matrix.MultScalarVec(d, it.dt))
	if err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	for _, i := range it.boundary {
		next[i] = it.t[i]
	}
	q, err := HeatTransfer(it.conns, it.sys.Index, next)
	if err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	it.t, it.q = next, q
	it.steps++

	return nil
}

// Temperatures returns a copy of the current node temperatures in kelvin.
func (it *Integrator) Temperatures() matrix.Vector { return it.t.Clone() }

// HeatTransfer returns a copy of the current per-connection heat flow in watts.
func (it *Integrator) HeatTransfer() matrix.Vector { return it.q.Clone() }

// Steps returns the number of completed transitions.
func (it *Integrator) Steps() int { return it.steps }

// Time returns the simulated time of the current state in seconds.
func (it *Integrator) Time() float64 { return matrix.RoundOff(float64(it.steps) * it.dt) }

// System returns the matrices driving the integrator.
func (it *Integrator) System() *system.System { return it.sys }
