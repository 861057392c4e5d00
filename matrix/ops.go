// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, matrix products and
// matrix-vector products on Vector and Matrix values. All functions perform
// fail-fast shape validation and return wrapped sentinels on mismatch.
//
// Determinism:
//   - Fixed loop orders (i→k→j for products, flat i for vectors).
//   - Fresh result allocation; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opAddVec = "AddVec"
	opMult   = "Mult"
	opMatVec = "MatVec"
	opZeros  = "Zeros"
	opSize   = "Size"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum a + b.
//
// Errors:
//   - ErrRagged if either operand is ragged.
//   - ErrDimensionMismatch if shapes differ.
//
// Complexity: O(rows*cols).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := make(Matrix, len(a))
	for i := range a {
		row := make(Vector, len(a[i]))
		for j := range a[i] {
			row[j] = a[i][j] + b[i][j]
		}
		out[i] = row
	}

	return out, nil
}

// AddVec computes the element-wise sum a + b of two vectors.
// Two empty vectors sum to an empty vector; an empty and a non-empty vector
// do not.
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n).
func AddVec(a, b Vector) (Vector, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return nil, matrixErrorf(opAddVec, err)
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Mult computes the matrix product a×b.
//
// Errors:
//   - ErrRagged if either operand is ragged.
//   - ErrDimensionMismatch if a.Width != b.Height.
//
// Complexity: O(r*n*c).
func Mult(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMult, err)
	}
	sb, _ := Size(b) // validated above
	inner := sb.Height
	out := make(Matrix, len(a))
	var (
		i, j, k int
		av      float64
	)
	for i = 0; i < len(a); i++ {
		row := make(Vector, sb.Width)
		for k = 0; k < inner; k++ {
			av = a[i][k]
			if av == 0 {
				continue
			}
			for j = 0; j < sb.Width; j++ {
				row[j] += av * b[k][j]
			}
		}
		out[i] = row
	}

	return out, nil
}

// MatVec computes y = a·x.
//
// The single-row empty matrix from Zeros(0, 0) times an empty vector yields
// an empty vector, keeping the empty-in/empty-out policy. A taller matrix
// with zero columns yields a zero vector of its height. A 1×1 matrix times a length-1 vector yields
// a length-1 vector.
//
// Errors:
//   - ErrRagged if a is ragged.
//   - ErrDimensionMismatch if a.Width != len(x).
//
// Complexity: O(rows*cols).
func MatVec(a Matrix, x Vector) (Vector, error) {
	sa, err := Size(a)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, sa.Width); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if sa.Width == 0 && sa.Height <= 1 {
		return Vector{}, nil
	}
	y := make(Vector, sa.Height)
	var acc float64
	for i, row := range a {
		acc = 0
		for j, v := range row {
			if x[j] != 0 {
				acc += v * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}
