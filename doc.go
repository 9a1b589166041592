// Package routegraph is the algorithmic core of a BFS routing
// visualizer: an incrementally mutable undirected graph plus a
// breadth-first routing engine that reports every step of its
// traversal as an ordered event stream.
//
// What routegraph gives you:
//
//   - core/ — the Graph Store: node and edge lifecycle with symmetric,
//     insertion-ordered adjacency, referential integrity on removal,
//     and a guard that rejects mutation while a search is running
//   - bfs/  — the BFS Engine: deterministic shortest-hop search with
//     per-step traversal events (start, visit, enqueue, found,
//     unreachable), parent-map path reconstruction, cancellation, and
//     optional fixed-delay pacing for animated consumers
//
// Why routegraph?
//
//   - Deterministic — neighbor expansion follows edge insertion order,
//     so identical build histories replay identical event streams
//   - Presentation-agnostic — no rendering, widgets, or logging inside;
//     any UI rebuilds its view from queries and traversal events
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII picture of the default routing topology:
//
//	        B───D
//	       /     \
//	      A       F
//	       \
//	        C───E
//
// A search from A to F visits A, discovers B then C, and reaches F
// through B and D: path [A B D F] in three hops.
//
// See examples/ for a console consumer that animates a search the way
// the original visualizer did.
package routegraph
