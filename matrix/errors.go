// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels, wrapped with an operation tag through
// matrixErrorf; callers match with errors.Is.
//
// Shape errors raised while integrating a validated thermal model indicate a
// bug in the system builder, not bad user input.

package matrix

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// AddVec of different lengths, or Mult where a.Width != b.Height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates a matrix whose rows have unequal length.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")
)
