package core

import "sort"

// Neighbors returns the labels adjacent to id in edge insertion order:
// the first edge attached to id comes first. The returned slice is a
// copy and safe to retain or mutate.
// Returns ErrUnknownNode if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyLabel
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrUnknownNode
	}

	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// HasNode reports whether the node exists (empty label ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether an edge connects a and b. Symmetry makes the
// argument order irrelevant. Absent endpoints report false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeSet[a][b]

	return ok
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the current number of edges. Each undirected edge
// counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Degree returns the number of edges incident to id.
// Returns ErrUnknownNode if id is absent.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyLabel
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrUnknownNode
	}

	return len(nbrs), nil
}

// Nodes returns all node labels sorted lexicographically ascending — a
// stable enumeration surface for populating selection widgets.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	labels := make([]string, 0, len(g.adjacency))
	for label := range g.adjacency {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
