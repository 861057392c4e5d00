package validation_test

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/validation"
)

// ExampleValidate shows that all problems are reported in one pass.
func ExampleValidate() {
	a := core.Node{ID: "a", Name: "A", TemperatureDegC: 20, CapacitanceJPerDegK: 100}
	in := core.ModelInput{
		Nodes:       []core.Node{a},
		Connections: []core.Connection{{ID: "loop", Source: a, Target: a, ResistanceDegKPerW: 1}},
		TimeStepS:   0,
		TotalTimeS:  10,
	}
	for _, e := range validation.Validate(in).Sorted() {
		fmt.Println(e.Name())
	}
	// Output:
	// CircularConnectionValidationError
	// TimeStepValidationError
}
