// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// impl_complete.go - Complete(n): every unordered pair linked once, i<j order.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Complexity: O(n²) links.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		idx := make([]int, n)
		for i := range idx {
			p, err := d.addNode(methodComplete, d.nextID(cfg), cfg)
			if err != nil {
				return err
			}
			idx[i] = p
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.connect(idx[i], idx[j], cfg.resistance, cfg.kind)
			}
		}

		return nil
	}
}
