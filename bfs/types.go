// Package bfs defines traversal events, tunable options, result types,
// and error definitions for breadth-first routing over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrUnknownNode is returned when the start or end label is absent
	// from the graph at invocation time.
	ErrUnknownNode = errors.New("bfs: unknown node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// EventKind identifies one algorithm step of a search.
type EventKind int

const (
	// EventStart marks the beginning of a search at the start node.
	EventStart EventKind = iota

	// EventVisit marks a node being dequeued from the frontier.
	EventVisit

	// EventEnqueue marks a newly discovered node joining the frontier.
	EventEnqueue

	// EventFound marks the destination being reached; the event carries
	// the full reconstructed path.
	EventFound

	// EventUnreachable marks frontier exhaustion without reaching the
	// destination.
	EventUnreachable
)

// String returns a short lowercase name for presentation layers.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventVisit:
		return "visit"
	case EventEnqueue:
		return "enqueue"
	case EventFound:
		return "found"
	case EventUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one immutable step record of a search, delivered to the
// observer in strict algorithmic order — no reordering, no batching.
type Event struct {
	// Kind identifies the algorithm step.
	Kind EventKind

	// Node is the label the event concerns: the start node for
	// EventStart, the dequeued node for EventVisit, the discovered node
	// for EventEnqueue, and the destination for EventFound and
	// EventUnreachable.
	Node string

	// From is the node that discovered Node. Set only for EventEnqueue.
	From string

	// Depth is Node's distance (in edges) from the start node.
	Depth int

	// Path is the full start → end route. Set only for EventFound.
	Path []string
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative delay), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked between events.
	Ctx context.Context

	// Observer receives every Event in order. Returning an error aborts
	// the search and propagates the error (wrapped) to the caller.
	Observer func(Event) error

	// StepDelay, if > 0, pauses after each emitted event — the pacing
	// hook animated consumers use. Cancellation interrupts the pause.
	StepDelay time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op observer
//   - no inter-event delay.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Observer:  func(Event) error { return nil },
		StepDelay: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers a callback for every traversal event;
// returning an error from the callback stops the search.
func WithObserver(fn func(Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithStepDelay pauses the search for d after each emitted event.
//
//	d > 0: fixed inter-event delay
//	d == 0: explicit no pacing
//	d < 0: invalid option → ErrOptionViolation
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: StepDelay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.StepDelay = d
	}
}

// Result holds the outcome of a completed search:
//   - Found:  whether the destination was reached.
//   - Path:   start → end inclusive when Found; nil otherwise.
//   - Order:  nodes visited (dequeued), in visit sequence.
//   - Depth:  map from node label to its distance (in edges) from start.
//   - Parent: map from node label to the node that first discovered it.
type Result struct {
	Found  bool
	Path   []string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the route from the start node to dest by walking
// the parent map backward and reversing. Returns an error if dest was
// not reached by the search.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}

	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
