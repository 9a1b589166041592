package core

// Clone returns a deep copy of the graph: independent adjacency lists
// and membership sets, insertion order preserved. The copy starts with
// no active searches, so a consumer can snapshot a graph for searching
// while continuing to mutate the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := NewGraph()
	cp.edgeCount = g.edgeCount

	for label, nbrs := range g.adjacency {
		dst := make([]string, len(nbrs))
		copy(dst, nbrs)
		cp.adjacency[label] = dst

		set := make(map[string]struct{}, len(g.edgeSet[label]))
		for nbr := range g.edgeSet[label] {
			set[nbr] = struct{}{}
		}
		cp.edgeSet[label] = set
	}

	return cp
}
