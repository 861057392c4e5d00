package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/builder"
)

// ExampleBuildModel assembles a heated rod cooled by ambient air.
func ExampleBuildModel() {
	in, err := builder.BuildModel(
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn), builder.WithResistance(4)},
		builder.Chain(3),
		builder.Heat("A", 10),
		builder.Ambient(20),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range in.Connections {
		fmt.Println(c.ID, c.ResistanceDegKPerW)
	}
	// Output:
	// bi:A-B 4
	// bi:B-C 4
	// bi:A-Ambient 4
	// bi:B-Ambient 4
	// bi:C-Ambient 4
}
