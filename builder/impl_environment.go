// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// impl_environment.go - boundary environments and per-node edits.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
)

const (
	methodAmbient = "Ambient"
	methodSpace   = "Space"
	methodHeat    = "Heat"
	methodFix     = "Fix"

	// AmbientNodeID is the fixed id of the node added by Ambient.
	AmbientNodeID = "Ambient"

	// SpaceNodeID is the fixed id of the node added by Space.
	SpaceNodeID = "Space"
)

// Ambient adds a boundary node held at tempC and a bi link of
// cfg.resistance from every free node present so far to it.
func Ambient(tempC float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		return attachBoundary(d, methodAmbient, AmbientNodeID, tempC, cfg.resistance, core.KindBi)
	}
}

// Space adds a boundary node held at tempC and a rad link of resistance r
// from every free node present so far to it. For a grey surface of area
// S and emissivity ε, r = 1/(σ·ε·S).
func Space(tempC, r float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if !(r > 0) {
			return fmt.Errorf("%s: resistance %v must be > 0: %w", methodSpace, r, ErrInvalidParameter)
		}
		return attachBoundary(d, methodSpace, SpaceNodeID, tempC, r, core.KindRad)
	}
}

func attachBoundary(d *draft, method, id string, tempC, r float64, kind core.Kind) error {
	free := make([]int, 0, len(d.nodes))
	for i, n := range d.nodes {
		if !n.IsBoundary {
			free = append(free, i)
		}
	}
	b, err := d.addBoundary(method, id, tempC)
	if err != nil {
		return err
	}
	for _, i := range free {
		d.connect(i, b, r, kind)
	}

	return nil
}

// Heat sets the power generation of node id to w watts.
func Heat(id string, w float64) Constructor {
	return func(d *draft, _ builderConfig) error {
		i, err := d.lookup(methodHeat, id)
		if err != nil {
			return err
		}
		d.nodes[i].PowerGenW = w

		return nil
	}
}

// Fix turns node id into a boundary node held at tempC.
func Fix(id string, tempC float64) Constructor {
	return func(d *draft, _ builderConfig) error {
		i, err := d.lookup(methodFix, id)
		if err != nil {
			return err
		}
		d.nodes[i].IsBoundary = true
		d.nodes[i].TemperatureDegC = tempC

		return nil
	}
}
