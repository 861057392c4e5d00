// SPDX-License-Identifier: MIT

// Package system converts a thermal network into the matrices of its
// lumped-capacitance ODE
//
//	dT/dt = A·T + A4·T⁴ + B
//
// where T is the vector of node temperatures in kelvin.
//
// For a connection c with resistance R and each endpoint node n with
// capacitance C, term = 1 / (C·R):
//
//   - bi:  source row gets -term at the source column and +term at the
//     target column; the target row mirrors it.
//   - uni: only the target row is written; the target cannot pull the
//     source.
//   - rad: only the source row of A4 is written.
//
// B[i] = powerGenW / capacitance of node i.
//
// A boundary node with zero capacitance keeps a zero row in A, A4 and B.
// Its temperature is reset every step, so the row is never used. Any other
// zero capacitance or resistance yields ±Inf/NaN terms; package validation
// rejects those models.
//
// An empty network yields A and A4 equal to matrix.Zeros(0, 0), a single
// empty row, and an empty B.
package system
