// Package core defines the Graph type, its sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph store operations.
var (
	// ErrEmptyLabel indicates that the provided node label is empty.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrDuplicateNode indicates AddNode was called with an existing label.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrSearchActive indicates a mutation was attempted while a search
	// holds the graph via BeginSearch.
	ErrSearchActive = errors.New("core: mutation rejected while a search is active")
)

// Graph is the in-memory store for an undirected, unweighted graph.
//
// Adjacency is kept twice, updated together under mu:
//   - adjacency holds per-node neighbor lists in edge insertion order,
//     the public iteration contract;
//   - edgeSet mirrors the same links as nested sets for O(1) membership.
//
// Symmetry is an invariant: b appears in adjacency[a] iff a appears in
// adjacency[b]. No parallel edges, no self-loops.
type Graph struct {
	mu sync.RWMutex

	// searching counts searches registered via BeginSearch; while
	// non-zero, every mutator fails with ErrSearchActive.
	searching int

	adjacency map[string][]string
	edgeSet   map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		edgeSet:   make(map[string]map[string]struct{}),
	}
}
