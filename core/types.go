// Package core defines Node, Edge, Graph and the option types used to
// construct a Graph.
package core

import "sync"

// NodeIndex is the integer key that uniquely identifies a node.
type NodeIndex int64

// Node is a graph node: its key and the caller-supplied value.
type Node[V any] struct {
	// ID is the unique key of this node.
	ID NodeIndex

	// Value is arbitrary caller data.
	Value V
}

// Edge is a directed record Head→Tail with a cost.
// An undirected edge is stored as two Edge records with swapped endpoints.
type Edge[C Cost] struct {
	// Head is the node owning this record in its adjacency sequence.
	Head NodeIndex

	// Tail is the node on the other side of the edge.
	Tail NodeIndex

	// Cost is the weight of the edge; zero when not supplied.
	Cost C
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// graphConfig collects construction-time hints.
type graphConfig struct {
	nodeCapacity int
	edgeCapacity int
}

// WithCapacity pre-sizes the node table and the edge arena.
// For large graphs, sizing up front avoids repeated rehashing and growth.
// Negative values are treated as zero.
func WithCapacity(nodes, edges int) GraphOption {
	return func(cfg *graphConfig) {
		cfg.nodeCapacity = max(nodes, 0)
		cfg.edgeCapacity = max(edges, 0)
	}
}

// Graph is an undirected graph with values of type V on nodes and costs of
// type C on edges.
//
// mu guards nodes, arena and adjacency.
type Graph[V any, C Cost] struct {
	mu sync.RWMutex

	nodes map[NodeIndex]Node[V]

	// arena holds every directed Edge record; adjacency[id] lists offsets
	// into arena in insertion order.
	arena     []Edge[C]
	adjacency map[NodeIndex][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity requested with WithCapacity.
func NewGraph[V any, C Cost](opts ...GraphOption) *Graph[V, C] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, C]{
		nodes: make(map[NodeIndex]Node[V], cfg.nodeCapacity),
		// each undirected edge occupies two arena slots
		arena:     make([]Edge[C], 0, 2*cfg.edgeCapacity),
		adjacency: make(map[NodeIndex][]int, cfg.nodeCapacity),
	}
}
