// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
	"github.com/katalvlaran/lvtherm/system"
)

// HeatTransfer returns the heat flow in watts over each connection for node
// temperatures t in kelvin, positions resolved through index:
//
//	bi, uni: (T_source − T_target) / R
//	rad:     (T_source⁴ − T_target⁴) / R
//
// A positive value flows from source to target.
//
// Errors: system.ErrUnknownNode if an endpoint is missing from index,
// matrix.ErrDimensionMismatch if index points outside t.
func HeatTransfer(connections []core.Connection, index core.Index, t matrix.Vector) (matrix.Vector, error) {
	q := make(matrix.Vector, len(connections))
	for i, c := range connections {
		s, ok := index.Lookup(c.Source.ID)
		if !ok {
			return nil, fmt.Errorf("HeatTransfer: connection %q source %q: %w", c.ID, c.Source.ID, system.ErrUnknownNode)
		}
		d, ok := index.Lookup(c.Target.ID)
		if !ok {
			return nil, fmt.Errorf("HeatTransfer: connection %q target %q: %w", c.ID, c.Target.ID, system.ErrUnknownNode)
		}
		if s >= len(t) || d >= len(t) {
			return nil, fmt.Errorf("HeatTransfer: %w", matrix.ErrDimensionMismatch)
		}
		if c.Kind == core.KindRad {
			q[i] = (math.Pow(t[s], 4) - math.Pow(t[d], 4)) / c.ResistanceDegKPerW
			continue
		}
		q[i] = (t[s] - t[d]) / c.ResistanceDegKPerW
	}

	return q, nil
}
