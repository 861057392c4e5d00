// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// impl_star.go - Star(n): hub "Center" plus n-1 leaves, spokes Center→leaf.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterNodeID is the fixed id of a Star hub.
	CenterNodeID = "Center"
)

// Star returns a Constructor that builds a star of n nodes (n ≥ 2).
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		hub, err := d.addNode(methodStar, CenterNodeID, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf, err := d.addNode(methodStar, d.nextID(cfg), cfg)
			if err != nil {
				return err
			}
			d.connect(hub, leaf, cfg.resistance, cfg.kind)
		}

		return nil
	}
}
