// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– WithMode:        FinalizeOnPop (default) or MarkOnDiscovery.
//	– WithReturnPath:  record predecessors so paths can be rebuilt.
//	– WithVisitor:     early-exit visitor.
//	– WithContext:     cancellation.
//
// Errors (sentinel):
//
//	– ErrGraphNil          if the provided graph pointer is nil.
//	– ErrStartNodeNotFound if the start node does not exist in the graph.
//	– ErrNegativeWeight    if a negative edge cost is detected in the graph.
//	– ErrNaNWeight         if a NaN edge cost is detected in the graph.
//	– ErrBadMode           if an unknown Mode is supplied.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ugraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNaNWeight indicates that a NaN edge cost was detected in the graph.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight encountered")

	// ErrBadMode indicates an unknown Mode value or name.
	ErrBadMode = errors.New("dijkstra: unknown mode")

	// ErrNoPath is returned by PathTo for an unreachable node.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrPathNotRecorded is returned by PathTo when WithReturnPath was not used.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded")
)

// Mode selects when a node's distance becomes final.
type Mode int

const (
	// FinalizeOnPop is classical Dijkstra: a node is settled the first time it
	// is popped from the priority queue, at its minimum tentative distance.
	// Later, cheaper discoveries still relax a node until it is settled.
	FinalizeOnPop Mode = iota

	// MarkOnDiscovery marks a node visited, and fixes its distance, the
	// first time any edge reaches it. This reproduces a simplified variant
	// whose distances can exceed the true shortest ones: with edges 1–2 (1),
	// 2–3 (1), 1–3 (5) it reports dist(3) = 5 from node 1, where
	// FinalizeOnPop reports 2.
	MarkOnDiscovery
)

// String returns the CLI name of the mode.
func (m Mode) String() string {
	switch m {
	case FinalizeOnPop:
		return "finalize"
	case MarkOnDiscovery:
		return "discovery"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "finalize" or "discovery" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "finalize", "finalize-on-pop":
		return FinalizeOnPop, nil
	case "discovery", "mark-on-discovery":
		return MarkOnDiscovery, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options[V any] struct {
	Ctx        context.Context // cancellation
	Visitor    core.Visitor[V] // early-exit visitor; nil runs to completion
	Mode       Mode            // when distances become final
	ReturnPath bool            // whether to record predecessors

	err error // recorded by invalid options
}

// Option represents a functional option for configuring Dijkstra.
type Option[V any] func(*Options[V])

// DefaultOptions returns Options with a background context, no visitor,
// FinalizeOnPop and no predecessor map.
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Ctx:  context.Background(),
		Mode: FinalizeOnPop,
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

// WithVisitor installs v. Under FinalizeOnPop it sees nodes as they are
// settled; under MarkOnDiscovery as they are discovered.
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

// WithMode selects FinalizeOnPop or MarkOnDiscovery.
// Unknown values surface as ErrBadMode when Dijkstra runs.
func WithMode[V any](m Mode) Option[V] {
	return func(o *Options[V]) {
		if m != FinalizeOnPop && m != MarkOnDiscovery {
			o.err = fmt.Errorf("%w: %d", ErrBadMode, int(m))
			return
		}
		o.Mode = m
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath[V any]() Option[V] {
	return func(o *Options[V]) {
		o.ReturnPath = true
	}
}

// Result holds the outcome of one Dijkstra run.
type Result[C core.Cost] struct {
	// Dist maps every node of the graph to its distance from start;
	// unreachable nodes hold core.Infinity[C]().
	Dist map[core.NodeIndex]C

	// Prev maps each reached node to its predecessor; nil unless
	// WithReturnPath was given. The start node has no entry.
	Prev map[core.NodeIndex]core.NodeIndex

	// Order lists nodes as they were settled (FinalizeOnPop) or
	// discovered (MarkOnDiscovery), start first.
	Order []core.NodeIndex

	// Stopped is true when the visitor ended the run early. Distances of
	// nodes not yet in Order are then tentative.
	Stopped bool

	// Mode is the mode the run used.
	Mode Mode
}

// Distance returns the distance to id and whether id was reached.
func (r *Result[C]) Distance(id core.NodeIndex) (C, bool) {
	d, ok := r.Dist[id]
	if !ok || core.IsInfinite(d) {
		return core.Infinity[C](), false
	}

	return d, true
}

// Reachable reports whether id was reached from start.
func (r *Result[C]) Reachable(id core.NodeIndex) bool {
	_, ok := r.Distance(id)
	return ok
}

// PathTo rebuilds the path start → dest from Prev.
func (r *Result[C]) PathTo(dest core.NodeIndex) ([]core.NodeIndex, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []core.NodeIndex{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
