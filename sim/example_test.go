package sim_test

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/sim"
)

// ExampleRun warms a block against a fixed-temperature plate.
func ExampleRun() {
	block := core.Node{ID: "block", Name: "block", TemperatureDegC: 0, CapacitanceJPerDegK: 100}
	plate := core.Node{ID: "plate", Name: "plate", TemperatureDegC: 100, IsBoundary: true}
	out := sim.Run(core.ModelInput{
		Nodes:       []core.Node{block, plate},
		Connections: []core.Connection{{ID: "c", Source: block, Target: plate, ResistanceDegKPerW: 1}},
		TimeStepS:   10,
		TotalTimeS:  30,
	})

	fmt.Println(out.TimeSeriesS)
	fmt.Println(out.NodeResults[0].TempDegC)
	fmt.Println(out.NodeResults[1].TempDegC)
	// Output:
	// [0 10 20 30]
	// [0 10 19 27.1]
	// [100 100 100 100]
}

// ExampleNumTimeSteps shows the ceiling policy.
func ExampleNumTimeSteps() {
	fmt.Println(sim.NumTimeSteps(4, 10), sim.NumTimeSteps(10, 10), sim.NumTimeSteps(100, 10))
	// Output:
	// 3 1 0
}
