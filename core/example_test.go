package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
)

// ExampleNewConnection wires two freshly created nodes with a conductive link.
func ExampleNewConnection() {
	chip := core.NewNode(core.NodeParams{Name: "chip", TemperatureDegC: 40, CapacitanceJPerDegK: 50, PowerGenW: 5})
	sink := core.NewNode(core.NodeParams{Name: "sink", TemperatureDegC: 25, CapacitanceJPerDegK: 500})
	link := core.NewConnection(core.ConnectionParams{Source: chip, Target: sink, ResistanceDegKPerW: 0.5, Kind: core.KindBi})

	fmt.Println(link.Source.Name, "->", link.Target.Name, link.Kind, link.ResistanceDegKPerW)
	// Output:
	// chip -> sink bi 0.5
}
