// SPDX-License-Identifier: MIT
// Package validation: the checks.

package validation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
)

// MaxTimeSteps caps ceil(totalTimeS/timeStepS). Runs keep every sample in
// memory, so longer ones are rejected as TotalTimeValidationError.
const MaxTimeSteps = 10_000_000

// Validate returns every rule in's model violates, or an empty (nil) list.
// It has no side effects and does not modify in.
func Validate(in core.ModelInput) Errors {
	var es Errors
	es = append(es, checkTime(in.TimeStepS, in.TotalTimeS)...)
	es = append(es, checkNodeIDs(in.Nodes)...)
	es = append(es, checkEndpoints(in.Nodes, in.Connections)...)
	es = append(es, checkNodes(in.Nodes)...)
	es = append(es, checkResistance(in.Connections)...)
	es = append(es, checkSelfLoops(in.Connections)...)
	es = append(es, checkConflicts(in.Connections)...)

	return es
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func checkTime(step, total float64) Errors {
	var es Errors
	if !finite(step) || step <= 0 {
		es = append(es, &Error{
			Kind:    KindTimeStep,
			Message: fmt.Sprintf("time step must be a positive number, got %v", step),
		})
	}
	switch {
	case !finite(total) || total <= 0:
		es = append(es, &Error{
			Kind:    KindTotalTime,
			Message: fmt.Sprintf("total time must be a positive number, got %v", total),
		})
	case total < step:
		es = append(es, &Error{
			Kind:    KindTotalTime,
			Message: fmt.Sprintf("total time %v is less than time step %v", total, step),
		})
	case finite(step) && step > 0 && matrix.RoundOff(total/step) > MaxTimeSteps:
		es = append(es, &Error{
			Kind:    KindTotalTime,
			Message: fmt.Sprintf("total time %v over time step %v exceeds %d steps", total, step, MaxTimeSteps),
		})
	}

	return es
}

func checkNodeIDs(nodes []core.Node) Errors {
	var es Errors
	seen := make(map[string]bool, len(nodes))
	reported := make(map[string]bool)
	for _, n := range nodes {
		if seen[n.ID] && !reported[n.ID] {
			reported[n.ID] = true
			es = append(es, &Error{
				Kind:    KindNodeIDUniqueness,
				Message: fmt.Sprintf("node id %q is used more than once", n.ID),
				NodeID:  n.ID,
			})
		}
		seen[n.ID] = true
	}

	return es
}

func checkEndpoints(nodes []core.Node, conns []core.Connection) Errors {
	var es Errors
	idx := core.NewIndex(nodes)
	for _, c := range conns {
		for _, end := range [2]struct {
			role string
			id   string
		}{{"source", c.Source.ID}, {"target", c.Target.ID}} {
			if idx.Has(end.id) {
				continue
			}
			es = append(es, &Error{
				Kind:         KindNodeNotFound,
				Message:      fmt.Sprintf("connection %q %s node %q does not exist", c.ID, end.role, end.id),
				NodeID:       end.id,
				ConnectionID: c.ID,
			})
		}
	}

	return es
}

func checkNodes(nodes []core.Node) Errors {
	var es Errors
	for _, n := range nodes {
		if !finite(n.TemperatureDegC) || n.TemperatureDegC < core.AbsoluteZeroC {
			es = append(es, &Error{
				Kind:    KindTemperature,
				Message: fmt.Sprintf("node %q temperature %v°C is below absolute zero or not a number", n.Name, n.TemperatureDegC),
				NodeID:  n.ID,
			})
		}
		c := n.CapacitanceJPerDegK
		switch {
		case !finite(c) || c < 0:
			es = append(es, &Error{
				Kind:    KindCapacitance,
				Message: fmt.Sprintf("node %q capacitance %v J/K must be a non-negative number", n.Name, c),
				NodeID:  n.ID,
			})
		case c == 0 && !n.IsBoundary:
			es = append(es, &Error{
				Kind:    KindCapacitance,
				Message: fmt.Sprintf("node %q capacitance must be positive unless the node is a boundary", n.Name),
				NodeID:  n.ID,
			})
		}
	}

	return es
}

func checkResistance(conns []core.Connection) Errors {
	var es Errors
	for _, c := range conns {
		r := c.ResistanceDegKPerW
		if !finite(r) || r <= 0 {
			es = append(es, &Error{
				Kind:         KindResistance,
				Message:      fmt.Sprintf("connection %q resistance %v K/W must be a positive number", c.ID, r),
				ConnectionID: c.ID,
			})
		}
	}

	return es
}

func checkSelfLoops(conns []core.Connection) Errors {
	var es Errors
	for _, c := range conns {
		if c.Source.ID == c.Target.ID {
			es = append(es, &Error{
				Kind:         KindCircularConnection,
				Message:      fmt.Sprintf("connection %q joins node %q to itself", c.ID, c.Source.ID),
				NodeID:       c.Source.ID,
				ConnectionID: c.ID,
			})
		}
	}

	return es
}

// pairKey is an unordered node-id pair.
type pairKey struct{ lo, hi string }

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a, b}
}

// checkConflicts reports once per node pair joined by more than one
// non-radiative connection. Groups are visited in first-appearance order.
func checkConflicts(conns []core.Connection) Errors {
	var order []pairKey
	groups := make(map[pairKey][]string)
	for _, c := range conns {
		if c.Kind.IsRadiative() || c.Source.ID == c.Target.ID {
			continue
		}
		k := newPairKey(c.Source.ID, c.Target.ID)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c.ID)
	}

	var es Errors
	for _, k := range order {
		ids := groups[k]
		if len(ids) < 2 {
			continue
		}
		es = append(es, &Error{
			Kind:          KindConflictingConnection,
			Message:       fmt.Sprintf("nodes %q and %q are joined by %d conductive/convective connections, at most one is allowed", k.lo, k.hi, len(ids)),
			ConnectionIDs: ids,
		})
	}

	return es
}
