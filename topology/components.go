// SPDX-License-Identifier: MIT

package topology

// Components returns the connected components of g, ordered by their first
// member in node order.
func (g *Graph) Components() []Component {
	seen := make([]bool, len(g.nodes))
	var comps []Component
	for i := range g.nodes {
		if seen[i] || g.index[g.nodes[i].ID] != i {
			continue
		}
		seen[i] = true
		queue := []int{i}
		var comp Component
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			n := g.nodes[u]
			comp.Nodes = append(comp.Nodes, n.ID)
			comp.HasBoundary = comp.HasBoundary || n.IsBoundary
			comp.NetPowerW += n.PowerGenW
			for _, e := range g.adj[u] {
				if !seen[e.to] {
					seen[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Floating returns the components with no boundary node. Their total
// energy changes only through their own power generation.
func (g *Graph) Floating() []Component {
	var out []Component
	for _, c := range g.Components() {
		if !c.HasBoundary {
			out = append(out, c)
		}
	}

	return out
}
