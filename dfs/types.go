// Package dfs defines types and options for depth-first search traversal,
// including cancellation, an early-exit visitor, a post-order hook, depth
// limiting, neighbor filtering, full-graph (forest) traversal, and basic
// diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/ugraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start index
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[V any] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V any] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Visitor, if non-nil, is handed each node when it is first discovered
	// (pre-order). Returning true stops the traversal immediately.
	Visitor core.Visitor[V]

	// OnExit, if non-nil, is invoked once all descendants of a node have been
	// explored (post-order), before the node is appended to Result.Finish.
	// Returning an error aborts traversal with that error.
	OnExit func(id core.NodeIndex) error

	// MaxDepth, if non-negative, limits discovery to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each tail index before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id core.NodeIndex) bool

	// FullTraversal, if true, restarts DFS from every unvisited node in
	// ascending index order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no visitor and no post-order hook
//   - no depth limit (MaxDepth = -1)
//   - no neighbor filtering
//   - single-source traversal
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[V any](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor installs v as the pre-order visitor.
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

// WithOnExit installs fn as a post-order hook.
func WithOnExit[V any](fn func(id core.NodeIndex) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit
// removes the bound.
func WithMaxDepth[V any](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters tail indices.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[V any](fn func(id core.NodeIndex) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every node of the graph.
func WithFullTraversal[V any]() Option[V] {
	return func(o *Options[V]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery sequence (pre-order).
	Order []core.NodeIndex

	// Finish records nodes in the sequence they were fully explored (post-order).
	// Nodes still on the stack when the traversal stopped are absent.
	Finish []core.NodeIndex

	// Depth maps each visited node to its tree depth (#edges) from its root.
	Depth map[core.NodeIndex]int

	// Parent maps each node to the node it was discovered from.
	// Roots of DFS trees do not appear.
	Parent map[core.NodeIndex]core.NodeIndex

	// Visited flags which nodes were reached during the traversal.
	Visited map[core.NodeIndex]bool

	// SkippedNeighbors counts edges skipped because FilterNeighbor returned false.
	SkippedNeighbors int

	// Stopped is true when the visitor ended the traversal early.
	Stopped bool
}
