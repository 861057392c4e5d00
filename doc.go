// SPDX-License-Identifier: MIT

// Package lvtherm simulates lumped-element thermal networks: nodes with a
// heat capacity and power generation, joined by conductive, one-way or
// radiative links of known thermal resistance, stepped forward in time with
// explicit Euler integration.
//
// The library is organized into small packages, bottom-up:
//
//	matrix/     dense float64 vectors and matrices, element-wise ops, round-off cleanup
//	core/       Node, Connection, Kind, ModelInput, id index and unit conversion
//	validation/ every input check, reported as typed, sortable errors
//	system/     assembly of the linear (A), radiative (A4) and source (B) terms
//	sim/        step count, integrator, heat flows, output shaping and Run
//	topology/   components, floating islands, BFS and cooling paths
//	builder/    deterministic fixture networks: chain, ring, star, grid, complete
//	metrics/    Prometheus run and validation counters
//	config/     YAML configuration for the command
//	cmd/lvtherm command line: run, validate, gen
//
// Quick start:
//
//	in, _ := builder.BuildModel(
//		[]builder.BuilderOption{builder.WithTotalTime(600)},
//		builder.Chain(4), builder.Heat("0", 5), builder.Ambient(20),
//	)
//	out := sim.Run(in)
//	fmt.Println(out.NodeResults[0].TempDegC[out.NumTimeSteps])
//
// Units: temperatures are °C at the boundary of the library and K inside
// the integrator; capacitance J/K; power W; resistance K/W for bi and uni
// links and K⁴/W for radiative ones; time s.
package lvtherm
