// SPDX-License-Identifier: MIT

package topology

// queueItem pairs a node position with its depth.
type queueItem struct {
	at    int
	depth int
}

// BFS explores g from startID.
//
// Errors: ErrStartNodeNotFound, ErrOptionViolation, or the context error if
// Ctx is cancelled mid-search.
func (g *Graph) BFS(startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := g.index.Lookup(startID)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	res := &Result{
		Depth:  map[string]int{g.nodes[start].ID: 0},
		Parent: map[string]string{},
	}
	seen := make([]bool, len(g.nodes))
	seen[start] = true
	queue := []queueItem{{at: start}}

	for qi := 0; qi < len(queue); qi++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[qi]
		id := g.nodes[cur.at].ID
		res.Order = append(res.Order, id)
		if o.MaxDepth > 0 && cur.depth >= o.MaxDepth {
			continue
		}
		for _, e := range g.adj[cur.at] {
			if seen[e.to] || (len(o.Kinds) > 0 && !o.Kinds[e.kind]) {
				continue
			}
			seen[e.to] = true
			next := g.nodes[e.to].ID
			res.Depth[next] = cur.depth + 1
			res.Parent[next] = id
			queue = append(queue, queueItem{at: e.to, depth: cur.depth + 1})
		}
	}

	return res, nil
}
