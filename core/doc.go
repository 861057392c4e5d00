// Package core defines the lumped-element thermal network data model:
// Node, Connection, Kind and ModelInput, plus unit conversion and the
// node-id index the builder and validator share.
//
// A thermal network G = (V, E) consists of:
//
//   - Nodes: lumped masses with a uniform temperature (°C), a thermal
//     capacitance (J/K), a net power generation (W) and a boundary flag.
//     Boundary nodes hold their temperature fixed for the whole run.
//   - Connections: thermal links between two nodes with a resistance (K/W)
//     and a transfer mode:
//     KindBi  – conduction/convection, both endpoints influence each other;
//     KindUni – source→target only, the target cannot pull the source;
//     KindRad – radiation on the T⁴ law, affecting the source only.
//
// Records are immutable values. The simulator reads them as the initial
// state and keeps all evolving temperature state in parallel vectors keyed
// by node position; nothing in this module mutates a Node or Connection.
//
// Identity:
//
//	NewNode and NewConnection assign a fresh UUID v4. Ids are only ever
//	compared for equality within a single model, so any unique string is
//	acceptable when callers construct records directly.
//
// Referential consistency (every connection endpoint names a node of the
// model) is checked by package validation, not enforced by the types.
package core
