// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start index is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[V any] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Visitor, if non-nil, is called once per node at the moment it is
	// marked visited (start first). Returning true stops the search.
	Visitor core.Visitor[V]

	// OnDequeue is called when a node is taken off the queue for expansion.
	OnDequeue func(id core.NodeIndex, depth int)

	// MaxDepth, if > 0, stops discovering nodes beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→next in adjacency order.
	FilterNeighbor func(curr, next core.NodeIndex) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no visitor (run to completion)
//   - no depth limit
//   - no filtering
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnDequeue:      func(core.NodeIndex, int) {},
		FilterNeighbor: func(_, _ core.NodeIndex) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V any](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor installs v as the discovery visitor.
func WithVisitor[V any](v core.Visitor[V]) Option[V] {
	return func(o *Options[V]) {
		o.Visitor = v
	}
}

// WithVisitFunc is WithVisitor for a plain function.
func WithVisitFunc[V any](fn func(core.Node[V]) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.Visitor = core.VisitorFunc[V](fn)
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[V any](fn func(id core.NodeIndex, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V any](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges curr→next when fn returns false.
func WithFilterNeighbor[V any](fn func(curr, next core.NodeIndex) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in the order they were marked visited.
//   - Depth: edge count from start for every visited node.
//   - Parent: predecessor of each visited node in the BFS tree (start has none).
//   - Stopped: true when the visitor ended the search early.
type Result struct {
	Order   []core.NodeIndex
	Depth   map[core.NodeIndex]int
	Parent  map[core.NodeIndex]core.NodeIndex
	Stopped bool
}

// Visited reports whether id was reached.
func (r *Result) Visited(id core.NodeIndex) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-edge path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeIndex) ([]core.NodeIndex, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []core.NodeIndex{}
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
