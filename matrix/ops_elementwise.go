// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar broadcasts (AddScalar, MultScalar), element-wise power (Pow) and
//     round-off cleanup (FixRoundOff) on both shapes.
//   - None of these can fail: a scalar broadcast has no dimension to mismatch.

package matrix

import (
	"math"
	"strconv"
)

// RoundOffDigits is the number of decimal places FixRoundOff keeps. Ten
// places eliminate summation artifacts at the 1e-10 scale.
const RoundOffDigits = 10

// roundOffScale is 10^RoundOffDigits.
var roundOffScale = math.Pow(10, RoundOffDigits)

// maxExactScaled bounds |x*roundOffScale| (2^53). Above it the float64
// spacing is wider than 1e-RoundOffDigits and RoundOff is the identity.
const maxExactScaled = 1 << 53

// AddScalarVec returns v[i] + s for every element.
func AddScalarVec(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x + s
	}

	return out
}

// AddScalar returns m[i][j] + s for every element.
func AddScalar(m Matrix, s float64) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = AddScalarVec(row, s)
	}

	return out
}

// MultScalarVec returns v[i] * s for every element.
func MultScalarVec(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * s
	}

	return out
}

// MultScalar returns m[i][j] * s for every element.
func MultScalar(m Matrix, s float64) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = MultScalarVec(row, s)
	}

	return out
}

// PowVec returns v[i]^n for every element.
func PowVec(v Vector, n float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, n)
	}

	return out
}

// Pow returns m[i][j]^n for every element (element-wise, not a matrix power).
func Pow(m Matrix, n float64) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = PowVec(row, n)
	}

	return out
}

// RoundOff rounds x to RoundOffDigits decimal places and returns the float64
// nearest to that decimal. Rounding goes through the shortest decimal text
// rather than scale-round-divide, so RoundOff(RoundOff(x)) == RoundOff(x)
// for every x. Values whose spacing already exceeds 1e-RoundOffDigits come
// back unchanged.
// NaN and ±Inf pass through; negative zero is normalized to zero.
func RoundOff(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x*roundOffScale) >= maxExactScaled {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', RoundOffDigits, 64), 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}

	return r
}

// FixRoundOff applies RoundOff to every element of v. It is idempotent.
// Complexity: O(n).
func FixRoundOff(v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = RoundOff(x)
	}

	return out
}
