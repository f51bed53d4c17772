package core_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with string values and integer costs.
	g := core.NewGraph[string, int]()

	// 2) Add edges (auto-adds nodes 1, 2 and 3).
	g.AddEdge(1, "A", 2, "B", 4)
	g.AddEdge(2, "B", 3, "C", 1)

	// 3) Inspect.
	fmt.Println("nodes:", g.Nodes())
	edges, _ := g.Edges(2)
	fmt.Println("edges of 2:", edges)
	_, ok := g.Node(9)
	fmt.Println("node 9 exists?", ok)

	// Output:
	// nodes: [1 2 3]
	// edges of 2: [{2 1 4} {2 3 1}]
	// node 9 exists? false
}

// ExampleGraph_EdgeAt walks an adjacency sequence with a cursor.
func ExampleGraph_EdgeAt() {
	g := core.NewGraph[struct{}, float64]()
	g.AddEdge(7, struct{}{}, 8, struct{}{}, 0.5)
	g.AddEdge(7, struct{}{}, 9, struct{}{}, 1.5)

	for i := 0; i < g.Degree(7); i++ {
		e, _ := g.EdgeAt(7, i)
		fmt.Printf("%d→%d %.1f\n", e.Head, e.Tail, e.Cost)
	}

	// Output:
	// 7→8 0.5
	// 7→9 1.5
}
