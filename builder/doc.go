// Package builder generates thermal network fixtures: deterministic
// core.ModelInput values for tests, benchmarks, examples and the lvtherm
// "gen" command.
//
// A model is assembled by BuildModel from a list of Constructors applied in
// order to a shared draft:
//
//   - Topologies: Chain, Ring, Star, Grid, Complete.
//   - Environment: Ambient (a boundary node with a convective link to every
//     free node), Space (a boundary node every free node radiates to).
//   - Edits: Heat (set a node's power), Fix (turn a node into a boundary).
//
// Node parameters (capacitance, initial temperature, power) and link
// parameters (resistance, kind) come from the resolved builderConfig, set
// with BuilderOption values:
//
//	in, err := builder.BuildModel(
//		[]builder.BuilderOption{builder.WithCapacitance(500), builder.WithTimeStep(0.5)},
//		builder.Chain(10), builder.Heat("0", 25), builder.Ambient(20),
//	)
//
// Node ids:
//
//   - Chain, Ring, Complete and Star leaves draw ids from cfg.idFn over a
//     counter shared by the whole build, so composed topologies never
//     collide.
//   - Grid uses the fixed coordinate scheme "r,c".
//   - Star hubs are "Center"; environment nodes are "Ambient" and "Space".
//
// Connection ids are "<kind>:<source>-<target>".
//
// Option constructors panic on meaningless values (negative capacitance,
// nil id scheme); Constructors never panic and return wrapped sentinels.
// Connections carry the final state of their endpoints: edits made after a
// link was added are reflected in the embedded node copies.
package builder
