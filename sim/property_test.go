package sim_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/sim"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func pairModel(tA, tB, cA, cB, r float64, boundaryB bool, steps int) core.ModelInput {
	a := core.Node{ID: "a", TemperatureDegC: tA, CapacitanceJPerDegK: cA}
	b := core.Node{ID: "b", TemperatureDegC: tB, CapacitanceJPerDegK: cB, IsBoundary: boundaryB}

	return core.ModelInput{
		Nodes:       []core.Node{a, b},
		Connections: []core.Connection{{ID: "ab", Source: a, Target: b, ResistanceDegKPerW: r}},
		TimeStepS:   1,
		TotalTimeS:  float64(steps),
	}
}

func TestRunProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// C·R ≥ 10 with dt = 1 keeps every case inside the stability bound.
	temp := gen.Float64Range(-100, 400)
	capacity := gen.Float64Range(10, 1e4)
	resist := gen.Float64Range(1, 100)
	steps := gen.IntRange(1, 40)

	properties.Property("boundary node series is constant", prop.ForAll(
		func(tA, tB, cA, r float64, n int) bool {
			out := sim.Run(pairModel(tA, tB, cA, 1, r, true, n))
			if len(out.Errors) > 0 {
				return false
			}
			for _, v := range out.NodeResults[1].TempDegC {
				if v != out.NodeResults[1].TempDegC[0] {
					return false
				}
			}
			return len(out.NodeResults[1].TempDegC) == n+1
		},
		temp, temp, capacity, resist, steps,
	))

	properties.Property("bi exchange conserves thermal energy", prop.ForAll(
		func(tA, tB, cA, cB, r float64, n int) bool {
			out := sim.Run(pairModel(tA, tB, cA, cB, r, false, n))
			if len(out.Errors) > 0 {
				return false
			}
			a, b := out.NodeResults[0].TempDegC, out.NodeResults[1].TempDegC
			e0 := cA*a[0] + cB*b[0]
			e1 := cA*a[n] + cB*b[n]
			return math.Abs(e1-e0) <= 1e-4+1e-9*math.Abs(e0)
		},
		temp, temp, capacity, capacity, resist, steps,
	))

	properties.Property("sample count is NumTimeSteps+1", prop.ForAll(
		func(dt, total float64) bool {
			in := pairModel(10, 20, 100, 100, 10, false, 1)
			in.TimeStepS, in.TotalTimeS = dt, total
			want := sim.NumTimeSteps(dt, total)
			out := sim.Run(in)
			return want >= 1 && len(out.TimeSeriesS) == want+1 && out.NumTimeSteps == want
		},
		gen.Float64Range(0.01, 1),
		gen.Float64Range(1, 20),
	))

	properties.TestingRun(t)
}
