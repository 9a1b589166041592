// Package bfs implements target-directed breadth-first search with
// ordered traversal-event reporting.
package bfs

import (
	"fmt"
	"time"

	"github.com/velikov/routegraph/core"
)

// queueItem pairs a node label with its hop distance from the start.
type queueItem struct {
	label string
	depth int
}

// walker encapsulates mutable search state for one invocation. It is
// created per Search call and never shared.
type walker struct {
	graph   *core.Graph
	opts    Options
	end     string
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search on g from start to end, applying any
// number of functional Options, and returns the completed Result.
// Returns ErrGraphNil or ErrUnknownNode for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// a wrapped observer error, or the context's error on cancellation.
// On any error the Result is nil: no partial path escapes.
//
// The search registers itself with the store (core.Graph.BeginSearch)
// for its whole run, so graph mutation is rejected while it is active.
func Search(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Hold the search guard across validation and traversal so the
	// store cannot change between the two.
	done := g.BeginSearch()
	defer done()

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %q", ErrUnknownNode, end)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if err := w.emit(Event{Kind: EventStart, Node: start}); err != nil {
		return nil, err
	}
	w.visited[start] = true
	w.res.Depth[start] = 0

	// Degenerate route: start == end succeeds immediately with the
	// single-element path; the loop below only detects the destination
	// on dequeue, so this must be handled explicitly.
	if start == end {
		if err := w.found(0); err != nil {
			return nil, err
		}
		return w.res, nil
	}

	// Seed the frontier and run the main loop.
	w.queue = append(w.queue, queueItem{label: start, depth: 0})
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// run processes the frontier until the destination is dequeued, the
// queue empties, cancellation fires, or the observer aborts.
func (w *walker) run() error {
	for len(w.queue) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if item.label == w.end {
			return w.found(item.depth)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return w.emit(Event{Kind: EventUnreachable, Node: w.end})
}

// visit records the dequeued node in Order and reports it.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.label)

	return w.emit(Event{Kind: EventVisit, Node: item.label, Depth: item.depth})
}

// expand enqueues every not-yet-visited neighbor of item in adjacency
// (edge insertion) order, recording parent links for reconstruction.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.label)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.label, err)
	}

	depth := item.depth + 1
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = depth
		w.res.Parent[nbr] = item.label
		w.queue = append(w.queue, queueItem{label: nbr, depth: depth})
		if err = w.emit(Event{Kind: EventEnqueue, Node: nbr, From: item.label, Depth: depth}); err != nil {
			return err
		}
	}

	return nil
}

// found reconstructs the shortest path, completes the Result, and
// reports the terminal event.
func (w *walker) found(depth int) error {
	path, err := w.res.PathTo(w.end)
	if err != nil {
		return err
	}
	w.res.Found = true
	w.res.Path = path

	return w.emit(Event{Kind: EventFound, Node: w.end, Depth: depth, Path: path})
}

// emit delivers one event to the observer, then applies pacing. Either
// stage may abort the search.
func (w *walker) emit(ev Event) error {
	if err := w.opts.Observer(ev); err != nil {
		return fmt.Errorf("bfs: observer error at %q: %w", ev.Node, err)
	}

	return w.pace()
}

// pace sleeps StepDelay between events, returning early with the
// context's error if cancellation fires mid-pause.
func (w *walker) pace() error {
	if w.opts.StepDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(w.opts.StepDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	}
}
