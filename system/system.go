// SPDX-License-Identifier: MIT

package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
)

// ErrUnknownNode is returned when a connection endpoint is not in the node list.
var ErrUnknownNode = errors.New("system: connection references unknown node")

// System holds the matrices of a thermal network, rows and columns ordered
// as the input node list.
type System struct {
	// A is the linear (conduction/convection) coefficient matrix, 1/s.
	A matrix.Matrix

	// A4 is the radiative coefficient matrix applied to T⁴, 1/(s·K³).
	A4 matrix.Matrix

	// B is the power input vector, K/s.
	B matrix.Vector

	// Index maps node ids to row positions.
	Index core.Index
}

// N returns the number of nodes.
func (s *System) N() int { return len(s.B) }

// Build assembles A, A4 and B for nodes and connections.
//
// Capacitance is read from nodes, never from the copies embedded in a
// connection. Nodes and connections are not modified.
//
// Errors:
//   - ErrUnknownNode if a connection endpoint is absent from nodes.
//
// Complexity: O(N² + E).
func Build(nodes []core.Node, connections []core.Connection) (*System, error) {
	n := len(nodes)
	a, err := matrix.Zeros(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	a4, err := matrix.Zeros(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	idx := core.NewIndex(nodes)

	for _, c := range connections {
		src, ok := idx.Lookup(c.Source.ID)
		if !ok {
			return nil, fmt.Errorf("Build: connection %q source %q: %w", c.ID, c.Source.ID, ErrUnknownNode)
		}
		dst, ok := idx.Lookup(c.Target.ID)
		if !ok {
			return nil, fmt.Errorf("Build: connection %q target %q: %w", c.ID, c.Target.ID, ErrUnknownNode)
		}
		r := c.ResistanceDegKPerW

		switch c.Kind {
		case core.KindRad:
			stamp(a4, nodes, src, dst, r)
		case core.KindUni:
			stamp(a, nodes, dst, src, r)
		default:
			stamp(a, nodes, src, dst, r)
			stamp(a, nodes, dst, src, r)
		}
	}

	b := make(matrix.Vector, n)
	for i, nd := range nodes {
		if skipRow(nd) {
			continue
		}
		b[i] = nd.PowerGenW / nd.CapacitanceJPerDegK
	}

	return &System{A: a, A4: a4, B: b, Index: idx}, nil
}

// stamp writes one endpoint's share of a connection: row gets -term on its
// own column and +term on the other's.
func stamp(m matrix.Matrix, nodes []core.Node, row, other int, r float64) {
	nd := nodes[row]
	if skipRow(nd) {
		return
	}
	term := 1 / (nd.CapacitanceJPerDegK * r)
	m[row][row] -= term
	m[row][other] += term
}

func skipRow(n core.Node) bool {
	return n.IsBoundary && n.CapacitanceJPerDegK == 0
}

// MaxStableStep returns 1/max|A_ii|, the largest explicit-Euler step for
// which the linear part of the system does not grow oscillations. It
// returns +Inf when A has no non-zero diagonal entry.
func (s *System) MaxStableStep() float64 {
	peak := 0.0
	for i := 0; i < s.N(); i++ {
		if d := math.Abs(s.A[i][i]); d > peak {
			peak = d
		}
	}
	if peak == 0 {
		return math.Inf(1)
	}

	return 1 / peak
}

// Derivative evaluates A·T + A4·T⁴ + B for temperatures t in kelvin.
func (s *System) Derivative(t matrix.Vector) (matrix.Vector, error) {
	lin, err := matrix.MatVec(s.A, t)
	if err != nil {
		return nil, fmt.Errorf("Derivative: %w", err)
	}
	rad, err := matrix.MatVec(s.A4, matrix.PowVec(t, 4))
	if err != nil {
		return nil, fmt.Errorf("Derivative: %w", err)
	}
	sum, err := matrix.AddVec(lin, rad)
	if err != nil {
		return nil, fmt.Errorf("Derivative: %w", err)
	}
	sum, err = matrix.AddVec(sum, s.B)
	if err != nil {
		return nil, fmt.Errorf("Derivative: %w", err)
	}

	return sum, nil
}
