// SPDX-License-Identifier: MIT

// Package matrix - construction and shape inspection.
package matrix

import "fmt"

// Zeros returns an h×w zero matrix (note the width-first argument order).
//
// The degenerate Zeros(0, 0) returns a single-row empty matrix [][]float64{{}}
// rather than a 0×0 value; see the package documentation.
//
// Errors:
//   - ErrBadShape if w < 0 or h < 0.
//
// Complexity: O(w*h) time and memory.
func Zeros(w, h int) (Matrix, error) {
	if w < 0 || h < 0 {
		return nil, matrixErrorf(opZeros, fmt.Errorf("w=%d h=%d: %w", w, h, ErrBadShape))
	}
	if w == 0 && h == 0 {
		return Matrix{Vector{}}, nil
	}
	// One flat backing buffer keeps rows contiguous.
	buf := make([]float64, w*h)
	out := make(Matrix, h)
	for i := 0; i < h; i++ {
		out[i] = buf[i*w : (i+1)*w : (i+1)*w]
	}

	return out, nil
}

// ZerosVec returns a zero vector of length n (n < 0 is treated as 0).
func ZerosVec(n int) Vector {
	if n < 0 {
		n = 0
	}

	return make(Vector, n)
}

// Size reports the {Width, Height} of m.
// A nil or empty matrix has Shape{0, 0}; the single-row empty matrix has
// Shape{0, 1}.
//
// Errors:
//   - ErrRagged if any row length differs from the first row.
//
// Complexity: O(rows).
func Size(m Matrix) (Shape, error) {
	h := len(m)
	if h == 0 {
		return Shape{}, nil
	}
	w := len(m[0])
	for i := 1; i < h; i++ {
		if len(m[i]) != w {
			return Shape{}, matrixErrorf(opSize, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(m[i]), w, ErrRagged))
		}
	}

	return Shape{Width: w, Height: h}, nil
}
