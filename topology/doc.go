// Package topology provides graph diagnostics over the connection graph of
// a thermal network: breadth-first reachability, connected components and
// lowest-resistance cooling paths.
//
// Connections are treated as undirected edges regardless of Kind: heat may
// flow one way only over uni and rad links, but for connectivity questions
// ("is this group of nodes anchored to a fixed temperature?") direction does
// not matter.
//
// Determinism
//
//	Nodes are visited in input order; neighbours in connection order. Equal
//	inputs yield equal results.
//
// Complexity (V = nodes, E = connections)
//
//   - NewGraph: O(V + E)
//   - BFS:      O(V + E)
//   - Components, Floating: O(V + E)
//   - ResistanceFrom, CoolingPath: O((V + E) log V), Dijkstra with a lazy heap
//
// Series resistance only sums over bi and uni links; radiative resistance
// has different units and is skipped.
//
// Connections naming an unknown node are ignored; package validation
// reports them.
package topology
