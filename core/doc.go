// Package core provides a generic, thread-safe, in-memory undirected graph
// keyed by integer node indices.
//
// The Graph G = (V,E) stores:
//
//   - a node table: NodeIndex → Node[V] (caller-supplied value of any type)
//   - an edge arena: every logical undirected edge u–v is materialized as two
//     directed Edge records, u→v and v→u, with equal cost
//   - an adjacency table: NodeIndex → offsets into the arena, kept in
//     edge-insertion order
//
// Guarantees:
//
//   - Symmetry: for every stored (u, v, c) a record (v, u, c) also exists.
//   - Referential integrity: AddEdge creates any missing endpoint.
//   - Deterministic adjacency order: Edges(id) and EdgeAt(id, i) report edges
//     in the order they were added. Traversals in bfs, dfs and dijkstra rely
//     on this order.
//   - Parallel edges are kept; they are never deduplicated.
//   - Re-inserting an existing NodeIndex overwrites the stored value.
//
// Traversal state (visited sets, distances, queues) is never stored in the
// graph. Every traversal owns its own state, so a Graph can serve any number
// of concurrent read-only traversals.
//
// Lookups report presence explicitly:
//
//	n, ok := g.Node(7)      // ok == false when 7 is unknown
//	es, ok := g.Edges(7)    // ok == false when 7 has no edges
//
// Counting:
//
//	NumberOfNodes()       // size of the node table
//	NumberOfEdges()       // number of distinct adjacency keys (nodes that own edges)
//	NumberOfEdgeRecords() // total directed records, 2 per AddEdge call
//
// Complexity:
//
//   - AddEdge, AddNode, Node, Degree, EdgeAt: O(1) amortized
//   - Edges(id): O(deg(id)) (returns a copy)
//   - Nodes(): O(V log V)
//   - Clone(): O(V + E)
//
// Concurrency: a single sync.RWMutex guards all tables; mutations take the
// write lock, queries take the read lock.
package core
