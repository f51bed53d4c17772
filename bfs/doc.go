// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Same-level ties are broken by adjacency insertion order, so the visit
//     sequence is fully reproducible for a fixed sequence of AddEdge calls.
//   - Returns a Result containing:
//   - Order: discovery sequence (start first)
//   - Depth: node → hop count from start
//   - Parent: node → predecessor in the BFS tree
//   - Stopped: whether the visitor ended the search
//   - An optional core.Visitor is handed every node exactly once, at the
//     moment it is marked visited; returning true stops the search before
//     any further node is discovered.
//
// Visited state is local to one call. The graph is never mutated, so two
// successive searches over one graph see identical results and concurrent
// searches do not interfere.
//
// Complexity (V = nodes, E = edge records)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1)
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithVisitor(core.StopAt[string](42)),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - context errors         if the context is cancelled mid-search.
package bfs
