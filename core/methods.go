package core

import "slices"

// AddNode inserts a node or overwrites the value of an existing one.
// The node's adjacency sequence, if any, is left untouched.
// Thread-safe: acquires the write lock.
//
// Complexity: O(1) amortized.
func (g *Graph[V, C]) AddNode(id NodeIndex, value V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[id] = Node[V]{ID: id, Value: value}
}

// AddEdge adds the undirected edge u–v with the given cost.
//
// Both endpoints are upserted first (an existing node gets its value
// overwritten), then u→v is appended to u's adjacency sequence and v→u to v's.
// Calling AddEdge twice with the same endpoints produces parallel edges.
// A self-loop (u == v) appends two records to u's sequence.
// Thread-safe: acquires the write lock.
//
// Complexity: O(1) amortized.
func (g *Graph[V, C]) AddEdge(u NodeIndex, uValue V, v NodeIndex, vValue V, cost C) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[u] = Node[V]{ID: u, Value: uValue}
	g.nodes[v] = Node[V]{ID: v, Value: vValue}

	g.appendRecord(Edge[C]{Head: u, Tail: v, Cost: cost})
	g.appendRecord(Edge[C]{Head: v, Tail: u, Cost: cost})
}

// AddEdgeNodes is AddEdge for callers that already hold Node values.
func (g *Graph[V, C]) AddEdgeNodes(head, tail Node[V], cost C) {
	g.AddEdge(head.ID, head.Value, tail.ID, tail.Value, cost)
}

// appendRecord stores e in the arena and links it from e.Head.
// Caller must hold the write lock.
func (g *Graph[V, C]) appendRecord(e Edge[C]) {
	g.arena = append(g.arena, e)
	g.adjacency[e.Head] = append(g.adjacency[e.Head], len(g.arena)-1)
}

// Node returns the node stored under id and whether it exists.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1).
func (g *Graph[V, C]) Node(id NodeIndex) (Node[V], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is in the node table.
func (g *Graph[V, C]) HasNode(id NodeIndex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Edges returns a copy of id's adjacency sequence in insertion order.
// ok is false, and the slice nil, when no edge was ever recorded for id.
// Thread-safe: acquires the read lock.
//
// Complexity: O(deg(id)).
func (g *Graph[V, C]) Edges(id NodeIndex) (edges []Edge[C], ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	offsets, ok := g.adjacency[id]
	if !ok {
		return nil, false
	}
	edges = make([]Edge[C], len(offsets))
	for i, off := range offsets {
		edges[i] = g.arena[off]
	}

	return edges, true
}

// Degree returns the length of id's adjacency sequence (0 if none).
// Each self-loop counts twice.
func (g *Graph[V, C]) Degree(id NodeIndex) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// EdgeAt returns the i-th record of id's adjacency sequence.
// ok is false when i is out of range. Together with Degree this gives
// cursor-style access without copying the sequence.
//
// Complexity: O(1).
func (g *Graph[V, C]) EdgeAt(id NodeIndex, i int) (Edge[C], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	offsets := g.adjacency[id]
	if i < 0 || i >= len(offsets) {
		return Edge[C]{}, false
	}

	return g.arena[offsets[i]], true
}

// Nodes returns every NodeIndex in ascending order.
//
// Complexity: O(V log V).
func (g *Graph[V, C]) Nodes() []NodeIndex {
	g.mu.RLock()
	ids := make([]NodeIndex, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	slices.Sort(ids)

	return ids
}

// NumberOfNodes returns the size of the node table.
func (g *Graph[V, C]) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NumberOfEdges returns the number of distinct adjacency-table keys, i.e. how
// many nodes own at least one edge record. It is not the edge count; use
// NumberOfEdgeRecords for that.
func (g *Graph[V, C]) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// NumberOfEdgeRecords returns the number of directed records in the graph,
// two for every AddEdge call.
func (g *Graph[V, C]) NumberOfEdgeRecords() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arena)
}

// EdgeList returns one record per AddEdge call, in call order: the u→v
// record as it was added. Replaying the list through AddEdge on an empty
// graph reproduces every adjacency sequence exactly.
// Thread-safe: acquires the read lock.
//
// Complexity: O(E).
func (g *Graph[V, C]) EdgeList() []Edge[C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// records come in pairs: u→v at 2k, v→u at 2k+1
	out := make([]Edge[C], 0, len(g.arena)/2)
	for i := 0; i < len(g.arena); i += 2 {
		out = append(out, g.arena[i])
	}

	return out
}

// Clone returns a deep copy of the graph: nodes, arena and adjacency.
// Node values are copied by assignment.
//
// Complexity: O(V + E).
func (g *Graph[V, C]) Clone() *Graph[V, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[V, C]{
		nodes:     make(map[NodeIndex]Node[V], len(g.nodes)),
		arena:     slices.Clone(g.arena),
		adjacency: make(map[NodeIndex][]int, len(g.adjacency)),
	}
	for id, n := range g.nodes {
		clone.nodes[id] = n
	}
	for id, offsets := range g.adjacency {
		clone.adjacency[id] = slices.Clone(offsets)
	}

	return clone
}
