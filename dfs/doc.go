// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//   - Nodes are discovered in the same pre-order a recursive DFS would produce
//     given the same adjacency insertion order; the implementation is
//     iterative, using a stack of (node, edge cursor) frames.
//   - Supports:
//   - an early-exit core.Visitor (pre-order)
//   - a post-order OnExit hook
//   - cancellation via context.Context
//   - depth limiting and neighbor filtering
//   - forest traversal over every component (WithFullTraversal)
//
// Why iterative:
//
//   - Very deep graphs (long chains) need no recursion, and a partially
//     explored node resumes from its cursor instead of rescanning its edges.
//
// Visited state belongs to the returned Result; the graph is never mutated.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the result maps; the frame stack holds at most one
//     frame per tree level.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start index not in graph (single-source mode)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnExit
package dfs
