// SPDX-License-Identifier: MIT

package core

// Index maps node IDs to their position in a model's node list.
// When IDs repeat (an invalid model), the first occurrence wins.
type Index map[string]int

// NewIndex builds the position index of nodes.
// Complexity: O(n) time and memory.
func NewIndex(nodes []Node) Index {
	idx := make(Index, len(nodes))
	for i, n := range nodes {
		if _, seen := idx[n.ID]; !seen {
			idx[n.ID] = i
		}
	}

	return idx
}

// Lookup returns the position of id.
func (idx Index) Lookup(id string) (int, bool) {
	i, ok := idx[id]

	return i, ok
}

// Has reports whether id is a known node.
func (idx Index) Has(id string) bool {
	_, ok := idx[id]

	return ok
}
