// Package matrix provides the small dense linear-algebra kernel used by the
// thermal integrator.
//
// The package works on exactly two shapes:
//
//   - Vector: a flat []float64 (temperatures, heat flows, power inputs).
//   - Matrix: a row-major [][]float64 (conductance and radiation systems).
//
// It is deliberately not a general tensor library. Every operation returns a
// freshly allocated result and never mutates its operands.
//
// Empty-input policy:
//
//	Operations on empty input return empty output. The one exception is
//	shape checking: AddVec([]{}, []{x}) fails with ErrDimensionMismatch,
//	while AddScalarVec([]{}, s) succeeds because a scalar broadcast has no
//	dimension to mismatch.
//
// Degenerate shape convention:
//
//	Zeros(0, 0) returns a single-row empty matrix ([][]float64{{}}), not a
//	0×0 one. Size reports it as {Width: 0, Height: 1}. Downstream shape checks
//	rely on this, so callers building an N×N system for N = 0 get the same
//	value.
//
// Round-off:
//
//	FixRoundOff rounds to RoundOffDigits decimal places to remove artifacts
//	of repeated summation (0.1+0.2 becomes 0.3) while preserving the
//	precision a thermal model actually carries.
package matrix
