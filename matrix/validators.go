// SPDX-License-Identifier: MIT
// Package matrix - centralized shape validators.
//
// Validators are side-effect free and return wrapped sentinels from errors.go.
// Kernels call them first and attach their own operation tag on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures matrices a and b have equal dimensions and that
// neither is ragged.
// Complexity: O(rows).
func ValidateSameShape(a, b Matrix) error {
	sa, err := Size(a)
	if err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	sb, err := Size(b)
	if err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if sa.Height != sb.Height {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if sa.Width != sb.Width {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Width == b.Height for a product a×b.
// Complexity: O(rows(a) + rows(b)).
func ValidateMulCompatible(a, b Matrix) error {
	sa, err := Size(a)
	if err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	sb, err := Size(b)
	if err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if sa.Width != sb.Height {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
