package sim_test

import (
	"testing"

	"github.com/katalvlaran/lvtherm/builder"
	"github.com/katalvlaran/lvtherm/sim"
)

func benchmarkRun(b *testing.B, rows, cols int) {
	in, err := builder.BuildModel(
		[]builder.BuilderOption{builder.WithTotalTime(100)},
		builder.Grid(rows, cols), builder.Heat(builder.GridID(0, 0), 100), builder.Ambient(20),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := sim.Run(in); len(out.Errors) > 0 {
			b.Fatal(out.Errors)
		}
	}
}

func BenchmarkRun_Grid4x4(b *testing.B)   { benchmarkRun(b, 4, 4) }
func BenchmarkRun_Grid16x16(b *testing.B) { benchmarkRun(b, 16, 16) }
