// SPDX-License-Identifier: MIT

package topology

import "github.com/katalvlaran/lvtherm/core"

// edge is one adjacency entry.
type edge struct {
	to   int
	kind core.Kind
	r    float64
}

// Graph is an undirected adjacency view of a thermal network.
type Graph struct {
	nodes []core.Node
	index core.Index
	adj   [][]edge
}

// NewGraph indexes nodes and connections. Duplicate node ids resolve to the
// first occurrence; self-loops and connections to unknown ids are skipped.
func NewGraph(nodes []core.Node, connections []core.Connection) *Graph {
	g := &Graph{
		nodes: nodes,
		index: core.NewIndex(nodes),
		adj:   make([][]edge, len(nodes)),
	}
	for _, c := range connections {
		s, ok := g.index.Lookup(c.Source.ID)
		if !ok {
			continue
		}
		t, ok := g.index.Lookup(c.Target.ID)
		if !ok || s == t {
			continue
		}
		g.adj[s] = append(g.adj[s], edge{to: t, kind: c.Kind, r: c.ResistanceDegKPerW})
		g.adj[t] = append(g.adj[t], edge{to: s, kind: c.Kind, r: c.ResistanceDegKPerW})
	}

	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Degree returns the number of connections incident to id, or -1 if id is
// unknown.
func (g *Graph) Degree(id string) int {
	i, ok := g.index.Lookup(id)
	if !ok {
		return -1
	}

	return len(g.adj[i])
}
