// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// impl_chain.go - Chain(n) and Ring(n).
//
// Both add n free nodes with ids from cfg.idFn and link consecutive nodes
// 0→1→…→n-1 in that order; Ring closes the loop with (n-1)→0.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	minChainNodes = 1
	minRingNodes  = 3
)

// Chain returns a Constructor that builds a linear chain of n nodes (n ≥ 1).
func Chain(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}
		_, err := addLinked(d, cfg, methodChain, n)

		return err
	}
}

// Ring returns a Constructor that builds a closed loop of n nodes (n ≥ 3).
func Ring(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		idx, err := addLinked(d, cfg, methodRing, n)
		if err != nil {
			return err
		}
		d.connect(idx[n-1], idx[0], cfg.resistance, cfg.kind)

		return nil
	}
}

// addLinked adds n nodes and links each to its successor.
func addLinked(d *draft, cfg builderConfig, method string, n int) ([]int, error) {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		p, err := d.addNode(method, d.nextID(cfg), cfg)
		if err != nil {
			return nil, err
		}
		idx[i] = p
		if i > 0 {
			d.connect(idx[i-1], p, cfg.resistance, cfg.kind)
		}
	}

	return idx, nil
}
