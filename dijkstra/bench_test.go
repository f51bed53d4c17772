package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dijkstra"
)

// randomGraph builds n nodes and m random edges with costs in [1,100].
func randomGraph(n, m int) *core.Graph[int, int] {
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph[int, int](core.WithCapacity(n, 2*m))
	for i := 0; i < n-1; i++ {
		g.AddEdge(core.NodeIndex(i), i, core.NodeIndex(i+1), i+1, 1+rng.Intn(100))
	}
	for i := n - 1; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		g.AddEdge(core.NodeIndex(u), u, core.NodeIndex(v), v, 1+rng.Intn(100))
	}

	return g
}

func BenchmarkDijkstra_FinalizeOnPop(b *testing.B) {
	g := randomGraph(5000, 20000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0)
	}
}

func BenchmarkDijkstra_MarkOnDiscovery(b *testing.B) {
	g := randomGraph(5000, 20000)
	opt := dijkstra.WithMode[int](dijkstra.MarkOnDiscovery)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0, opt)
	}
}
