// Package ugraph is an in-memory, integer-keyed undirected graph with
// generic node values and numeric edge costs, plus the traversals that
// run over it.
//
// 🚀 What is ugraph?
//
//	A small, thread-safe library that brings together:
//		• Core store: nodes, symmetric edge records, insertion-ordered adjacency
//		• Traversals: BFS (level order) and iterative DFS (pre/post order)
//		• Shortest paths: Dijkstra with a deterministic heap tie-break
//		• A CLI (cmd/ugraph) that loads YAML graphs and runs the algorithms
//
// ✨ Why choose ugraph?
//
//   - Traversal state lives in the traversal, never in the graph
//   - Early exit through a one-method Visitor
//   - Pure Go: the library packages import only the standard library
//
// Layout:
//
//	core/      Graph, Node, Edge, NodeIndex, Cost, Visitor
//	bfs/       breadth-first search
//	dfs/       depth-first search with explicit stack frames
//	dijkstra/  single-source shortest paths
//	builder/   deterministic graph constructors
//	cmd/ugraph command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4───5
//
//	five nodes, five edges; DFS from 1 visits 1 2 4 3 5.
//
//	go get github.com/katalvlaran/ugraph
package ugraph
