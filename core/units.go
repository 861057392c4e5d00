// SPDX-License-Identifier: MIT

package core

import "github.com/katalvlaran/lvtherm/matrix"

// AbsoluteZeroC is absolute zero in degrees Celsius.
const AbsoluteZeroC = -273.15

// KelvinOffset converts °C to K by addition.
const KelvinOffset = -AbsoluteZeroC

// CelsiusToKelvin converts a single temperature.
func CelsiusToKelvin(c float64) float64 { return c + KelvinOffset }

// KelvinToCelsius converts a single temperature.
func KelvinToCelsius(k float64) float64 { return k - KelvinOffset }

// ToKelvin converts a vector of °C temperatures to K.
func ToKelvin(c matrix.Vector) matrix.Vector {
	return matrix.AddScalarVec(c, KelvinOffset)
}

// ToCelsius converts a vector of K temperatures to °C and removes the
// round-off the offset subtraction introduces, so ToCelsius(ToKelvin(x))
// reproduces x for values carrying up to matrix.RoundOffDigits decimals.
//
// Output precision is matrix.RoundOffDigits decimal places (1e-10 °C):
// differences finer than that are rounded away, and ToCelsius(ToKelvin(1e-12))
// is 0.
func ToCelsius(k matrix.Vector) matrix.Vector {
	return matrix.FixRoundOff(matrix.AddScalarVec(k, -KelvinOffset))
}

// Temperatures returns the initial °C temperatures of nodes in order.
func Temperatures(nodes []Node) matrix.Vector {
	out := make(matrix.Vector, len(nodes))
	for i, n := range nodes {
		out[i] = n.TemperatureDegC
	}

	return out
}
