package core

import "sync"

// AddNode inserts a node with an empty neighbor set.
// Returns ErrEmptyLabel for an empty label, ErrDuplicateNode if the
// label is already present, ErrSearchActive while a search is running.
// Complexity: O(1).
func (g *Graph) AddNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.searching > 0 {
		return ErrSearchActive
	}
	if _, exists := g.adjacency[label]; exists {
		return ErrDuplicateNode
	}

	g.adjacency[label] = nil
	g.edgeSet[label] = make(map[string]struct{})

	return nil
}

// RemoveNode deletes a node and severs all its edges. Every remaining
// neighbor's adjacency list is purged of the label before the node
// itself is removed, so no dangling references survive.
// Removal is not idempotent: removing an absent node is ErrUnknownNode.
// Complexity: O(deg(label) · max-degree) for the neighbor list purges.
func (g *Graph) RemoveNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.searching > 0 {
		return ErrSearchActive
	}
	neighbors, exists := g.adjacency[label]
	if !exists {
		return ErrUnknownNode
	}

	// Sever the reverse direction of every incident edge first.
	for _, nbr := range neighbors {
		g.unlink(nbr, label)
	}
	g.edgeCount -= len(neighbors)

	delete(g.adjacency, label)
	delete(g.edgeSet, label)

	return nil
}

// AddEdge connects a and b symmetrically as a single logical operation:
// b is appended to a's neighbor list and a to b's. Adding an edge that
// already exists is a no-op, not an error.
// Returns ErrUnknownNode if either endpoint is absent, ErrSelfLoop when
// a == b, ErrSearchActive while a search is running.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.searching > 0 {
		return ErrSearchActive
	}
	if _, ok := g.adjacency[a]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.adjacency[b]; !ok {
		return ErrUnknownNode
	}
	if a == b {
		return ErrSelfLoop
	}
	if _, dup := g.edgeSet[a][b]; dup {
		return nil // edge already present: defined no-op
	}

	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edgeSet[a][b] = struct{}{}
	g.edgeSet[b][a] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge disconnects a and b in both directions. Removing an edge
// that does not exist is a no-op, not an error.
// Returns ErrUnknownNode if either endpoint is absent, ErrSearchActive
// while a search is running.
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) RemoveEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.searching > 0 {
		return ErrSearchActive
	}
	if _, ok := g.adjacency[a]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.adjacency[b]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.edgeSet[a][b]; !ok {
		return nil // edge absent: defined no-op
	}

	g.unlink(a, b)
	g.unlink(b, a)
	g.edgeCount--

	return nil
}

// unlink removes to from from's neighbor list and membership set,
// preserving the insertion order of the remaining neighbors.
// Must be called under the write lock.
func (g *Graph) unlink(from, to string) {
	delete(g.edgeSet[from], to)

	nbrs := g.adjacency[from]
	for i, nbr := range nbrs {
		if nbr == to {
			g.adjacency[from] = append(nbrs[:i], nbrs[i+1:]...)
			break
		}
	}
}

// BeginSearch registers a running search and returns its release func.
// While at least one search is registered, all mutators fail with
// ErrSearchActive; read queries are unaffected. The returned func is
// idempotent and must be called when the search finishes or aborts.
func (g *Graph) BeginSearch() (end func()) {
	g.mu.Lock()
	g.searching++
	g.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.searching--
			g.mu.Unlock()
		})
	}
}
