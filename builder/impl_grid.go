// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// impl_grid.go - Grid(rows, cols): a plate discretized into rows×cols cells.
//
// Node ids use the fixed coordinate scheme "r,c" in row-major order. Each
// cell links to its Right then Bottom neighbour where they exist.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the id of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		idx := make([]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p, err := d.addNode(methodGrid, GridID(r, c), cfg)
				if err != nil {
					return err
				}
				idx[r*cols+c] = p
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := idx[r*cols+c]
				if c+1 < cols {
					d.connect(u, idx[r*cols+c+1], cfg.resistance, cfg.kind)
				}
				if r+1 < rows {
					d.connect(u, idx[(r+1)*cols+c], cfg.resistance, cfg.kind)
				}
			}
		}

		return nil
	}
}
