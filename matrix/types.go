// SPDX-License-Identifier: MIT

// Package matrix: the two shapes the package operates on.
package matrix

// Vector is a flat numeric vector.
type Vector []float64

// Matrix is a row-major numeric matrix. Rows must all have the same length;
// Size reports ErrRagged otherwise.
type Matrix [][]float64

// Shape reports matrix dimensions. Width is the column count, Height the row
// count, matching the (w, h) argument order of Zeros.
type Shape struct {
	Width  int
	Height int
}

// Clone returns a deep copy of v. A nil vector clones to an empty one.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(rows*cols).
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make(Vector, len(row))
		copy(out[i], row)
	}

	return out
}
