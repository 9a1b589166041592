// Package core provides the thread-safe, in-memory Graph Store backing
// the routing engine: node identities plus symmetric, insertion-ordered
// adjacency.
//
// What
//
//   - Explicit node lifecycle: AddNode rejects duplicates, RemoveNode
//     severs every incident edge before deleting the node
//   - Symmetric edges: AddEdge(a, b) links both directions as one
//     logical operation; re-adding an existing edge is a no-op
//   - Insertion-ordered neighbors: Neighbors(id) returns the adjacency
//     list in the order edges were attached to that node — the
//     determinism contract the BFS engine builds on
//   - Pure queries for presentation layers: HasNode, HasEdge, Nodes,
//     NodeCount, EdgeCount, Degree
//   - A search guard (BeginSearch) that rejects mutation while any
//     search holds the graph, instead of silently tolerating races
//
// Why
//
//	A single Graph owns all node/edge state. Presentation-specific data
//	(positions, colors, widget handles) lives outside, keyed by the same
//	labels; the store exposes everything a view needs to rebuild itself.
//
// Determinism
//
//	Neighbors(id) iteration order equals edge insertion order at that
//	node; first-added edge first. Nodes() returns labels sorted
//	lexicographically ascending for stable widget population.
//
// Concurrency
//
//	All operations are guarded by a single sync.RWMutex. Mutators
//	additionally fail with ErrSearchActive while one or more searches
//	are registered via BeginSearch; read queries stay available.
//
// Errors
//
//   - ErrEmptyLabel     if a node label is the empty string.
//   - ErrDuplicateNode  if AddNode sees an existing label.
//   - ErrUnknownNode    if an operation references an absent node.
//   - ErrSelfLoop       if AddEdge is asked to connect a node to itself.
//   - ErrSearchActive   if a mutator runs while a search is in flight.
package core
