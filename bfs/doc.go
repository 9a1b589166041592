// Package bfs provides target-directed breadth-first search over a
// core.Graph, reporting every algorithm step as an ordered traversal
// event and reconstructing the shortest-hop path on success.
//
// What
//
//   - Search(g, start, end) explores nodes in non-decreasing hop count
//     from start until end is dequeued or the frontier empties.
//   - Returns a Result containing:
//   - Found:  whether end was reached
//   - Path:   start → end inclusive, shortest by edge count
//   - Order:  visit (dequeue) sequence
//   - Depth:  map from node → distance (edges) from start
//   - Parent: map from node → the node that first discovered it
//   - Emits one Event per algorithm step, in strict order:
//     Start(start) · Visit(n) on each dequeue · Enqueue(n, from) on
//     each discovery · terminal Found(end, path) or Unreachable(end).
//   - Supports an observer hook, context cancellation between any two
//     events, and optional fixed inter-event pacing for animation.
//
// Why
//
//   - Compute unweighted shortest routes in O(V + E) time.
//   - Drive visualizers: consumers animate or log the event stream
//     without the engine knowing anything about presentation.
//
// Determinism
//
//	core.Neighbors returns adjacency in edge insertion order and the
//	engine enqueues neighbors in exactly that order, so two searches
//	over the same build history produce identical event sequences and
//	identical paths.
//
// Concurrency
//
//	Search registers itself via core.Graph.BeginSearch for its whole
//	run: the store rejects mutation while the search is in flight. The
//	engine never mutates the graph; cancellation simply abandons the
//	remaining traversal and returns no partial result.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node dequeued at most once)
//   - Memory: O(V)       (queue, visited set, Depth, Parent)
//
// Usage
//
//	res, err := bfs.Search(g, "A", "F",
//	    bfs.WithContext(ctx),
//	    bfs.WithObserver(func(ev bfs.Event) error {
//	        fmt.Println(ev.Kind, ev.Node)
//	        return nil
//	    }),
//	    bfs.WithStepDelay(500*time.Millisecond),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrUnknownNode, ErrOptionViolation,
//	    // a wrapped observer error, or ctx.Err()
//	}
//	if res.Found {
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - DefaultOptions():    background Context, no-op observer, no delay.
//   - WithContext(ctx):    set a custom context for cancellation.
//   - WithObserver(fn):    per-event hook; returning an error aborts.
//   - WithStepDelay(d):    sleep d after each event (d < 0 is invalid).
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrUnknownNode     if start or end is absent at invocation time.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - ErrNeighbors       if a neighbor lookup fails mid-search.
//   - Wrapped observer errors and propagated context errors.
package bfs
