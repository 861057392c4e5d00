// SPDX-License-Identifier: MIT

package topology

import (
	"container/heap"
	"fmt"
	"math"
)

// Paths holds the series thermal resistance from one source node to every
// other node over conductive (bi and uni) links.
type Paths struct {
	// Source is the origin node id.
	Source string

	// Resistance maps node id to the lowest series resistance in K/W;
	// unreachable nodes map to +Inf.
	Resistance map[string]float64

	// Prev maps node id to its predecessor on the lowest-resistance path.
	Prev map[string]string
}

// CoolingPath is the lowest-resistance route from a node to any boundary.
type CoolingPath struct {
	NodeID             string   `json:"nodeId"`
	BoundaryID         string   `json:"boundaryId"`
	ResistanceDegKPerW float64  `json:"resistanceDegKPerW"`
	Path               []string `json:"path"`
}

// ResistanceFrom runs Dijkstra from sourceID with link resistance as the
// edge weight. Radiative links are skipped: their resistance is in K⁴/W
// and does not add in series with conductive ones. Links with a non-finite
// or non-positive resistance are treated as impassable.
//
// Errors: ErrStartNodeNotFound.
func (g *Graph) ResistanceFrom(sourceID string) (*Paths, error) {
	src, ok := g.index.Lookup(sourceID)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	dist := make([]float64, len(g.nodes))
	prev := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0
	done := make([]bool, len(g.nodes))
	pq := &nodePQ{{at: src}}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		// stale entry
		if done[item.at] {
			continue
		}
		done[item.at] = true
		for _, e := range g.adj[item.at] {
			if e.kind.IsRadiative() || !(e.r > 0) || math.IsInf(e.r, 0) {
				continue
			}
			if nd := dist[item.at] + e.r; nd < dist[e.to] {
				dist[e.to] = nd
				prev[e.to] = item.at
				heap.Push(pq, nodeItem{at: e.to, dist: nd})
			}
		}
	}

	p := &Paths{
		Source:     sourceID,
		Resistance: make(map[string]float64, len(g.nodes)),
		Prev:       make(map[string]string, len(g.nodes)),
	}
	for i, n := range g.nodes {
		if _, seen := p.Resistance[n.ID]; seen {
			continue
		}
		p.Resistance[n.ID] = dist[i]
		if prev[i] >= 0 {
			p.Prev[n.ID] = g.nodes[prev[i]].ID
		}
	}

	return p, nil
}

// PathTo reconstructs the lowest-resistance path from Source to dest.
func (p *Paths) PathTo(dest string) ([]string, error) {
	if r, ok := p.Resistance[dest]; !ok || math.IsInf(r, 1) {
		return nil, fmt.Errorf("topology: no conductive path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; cur != p.Source; {
		cur = p.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// CoolingPath returns the lowest-resistance conductive route from id to a
// boundary node. ok is false when no boundary is conductively reachable.
func (g *Graph) CoolingPath(id string) (CoolingPath, bool, error) {
	p, err := g.ResistanceFrom(id)
	if err != nil {
		return CoolingPath{}, false, err
	}
	best := CoolingPath{NodeID: id, ResistanceDegKPerW: math.Inf(1)}
	for _, n := range g.nodes {
		if !n.IsBoundary {
			continue
		}
		if r := p.Resistance[n.ID]; r < best.ResistanceDegKPerW {
			best.BoundaryID = n.ID
			best.ResistanceDegKPerW = r
		}
	}
	if best.BoundaryID == "" {
		return CoolingPath{}, false, nil
	}
	best.Path, err = p.PathTo(best.BoundaryID)
	if err != nil {
		return CoolingPath{}, false, err
	}

	return best, true, nil
}

// nodeItem is a heap entry; stale duplicates are skipped on pop.
type nodeItem struct {
	at   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)        { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
