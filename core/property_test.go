package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestUnitRoundTrip checks ToCelsius(ToKelvin(x)) == x over random vectors.
func TestUnitRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("round-trip is exact for micro-degree resolution", prop.ForAll(
		func(micro []int64) bool {
			x := make(matrix.Vector, len(micro))
			for i, m := range micro {
				x[i] = float64(m) / 1e6
			}
			back := core.ToCelsius(core.ToKelvin(x))
			for i := range x {
				if back[i] != x[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-273150000, 100000000000)),
	))

	properties.Property("round-trip stays within rounding distance for any real", prop.ForAll(
		func(xs []float64) bool {
			back := core.ToCelsius(core.ToKelvin(xs))
			for i := range xs {
				if math.Abs(back[i]-xs[i]) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-273.15, 1e5)),
	))

	properties.TestingRun(t)
}
