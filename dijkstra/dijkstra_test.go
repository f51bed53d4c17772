// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// They cover validation, both modes, the heap tie-break, early exit,
// cancellation, and several cost kinds.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dijkstra"
)

type ids = []core.NodeIndex

// triangle builds 1–2 (1), 2–3 (1), 1–3 (5).
func triangle() *core.Graph[string, int] {
	g := core.NewGraph[string, int]()
	g.AddEdge(1, "A", 2, "B", 1)
	g.AddEdge(2, "B", 3, "C", 1)
	g.AddEdge(1, "A", 3, "C", 5)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra[string, int](nil, 1)
	if !errors.Is(err, dijkstra.ErrGraphNil) {
		t.Fatalf("Expected ErrGraphNil, got %v", err)
	}
	if res != nil {
		t.Errorf("Expected nil result, got %+v", res)
	}
}

func TestDijkstra_StartNotFound(t *testing.T) {
	_, err := dijkstra.Dijkstra(triangle(), 42)
	if !errors.Is(err, dijkstra.ErrStartNodeNotFound) {
		t.Fatalf("Expected ErrStartNodeNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := triangle()
	g.AddEdge(3, "C", 4, "D", -2)
	_, err := dijkstra.Dijkstra(g, 1)
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_NaNWeight(t *testing.T) {
	g := core.NewGraph[string, float64]()
	g.AddEdge(1, "", 2, "", math.NaN())
	g.AddEdge(2, "", 3, "", 1)
	g.AddEdge(1, "", 3, "", 7)
	_, err := dijkstra.Dijkstra(g, 1)
	if !errors.Is(err, dijkstra.ErrNaNWeight) {
		t.Fatalf("Expected ErrNaNWeight, got %v", err)
	}
}

func TestDijkstra_NegativeWeightOutsideComponent(t *testing.T) {
	// The pre-scan covers the whole graph, not only the start's component.
	g := triangle()
	g.AddEdge(8, "", 9, "", -1)
	if _, err := dijkstra.Dijkstra(g, 1); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadMode(t *testing.T) {
	_, err := dijkstra.Dijkstra(triangle(), 1, dijkstra.WithMode[string](dijkstra.Mode(7)))
	if !errors.Is(err, dijkstra.ErrBadMode) {
		t.Fatalf("Expected ErrBadMode, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]dijkstra.Mode{
		"":            dijkstra.FinalizeOnPop,
		"finalize":    dijkstra.FinalizeOnPop,
		"FINALIZE":    dijkstra.FinalizeOnPop,
		"discovery":   dijkstra.MarkOnDiscovery,
		" discovery ": dijkstra.MarkOnDiscovery,
	}
	for in, want := range cases {
		got, err := dijkstra.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := dijkstra.ParseMode("astar"); !errors.Is(err, dijkstra.ErrBadMode) {
		t.Errorf("ParseMode(astar): expected ErrBadMode, got %v", err)
	}
	if s := dijkstra.MarkOnDiscovery.String(); s != "discovery" {
		t.Errorf("String() = %q; want discovery", s)
	}
}

// ------------------------------------------------------------------------
// 2. Mode Tests: finalize-on-pop versus mark-on-discovery.
// ------------------------------------------------------------------------

func TestDijkstra_TriangleFinalizeOnPop(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(), 1, dijkstra.WithReturnPath[string]())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := map[core.NodeIndex]int{1: 0, 2: 1, 3: 2}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo(3): %v", err)
	}
	if !reflect.DeepEqual(path, ids{1, 2, 3}) {
		t.Errorf("PathTo(3) = %v; want [1 2 3]", path)
	}
	if res.Mode != dijkstra.FinalizeOnPop {
		t.Errorf("Mode = %v; want finalize", res.Mode)
	}
}

func TestDijkstra_TriangleMarkOnDiscovery(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(), 1,
		dijkstra.WithMode[string](dijkstra.MarkOnDiscovery),
		dijkstra.WithReturnPath[string](),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Node 3 is fixed through the direct edge before the cheaper route is seen.
	if d, _ := res.Distance(3); d != 5 {
		t.Errorf("Distance(3) = %d; want 5", d)
	}
	path, _ := res.PathTo(3)
	if !reflect.DeepEqual(path, ids{1, 3}) {
		t.Errorf("PathTo(3) = %v; want [1 3]", path)
	}
	if !reflect.DeepEqual(res.Order, ids{1, 2, 3}) {
		t.Errorf("Order = %v; want [1 2 3]", res.Order)
	}
}

func TestDijkstra_TieBreakHigherIndexFirst(t *testing.T) {
	//      1
	//    /   \
	//   2     3     all costs 1
	//   |     |
	//   4     5
	g := core.NewGraph[string, int]()
	g.AddEdge(1, "", 2, "", 1)
	g.AddEdge(1, "", 3, "", 1)
	g.AddEdge(2, "", 4, "", 1)
	g.AddEdge(3, "", 5, "", 1)

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := (ids{1, 3, 2, 5, 4}); !reflect.DeepEqual(res.Order, want) {
		t.Errorf("finalize Order = %v; want %v", res.Order, want)
	}

	// Discovery order: 2 and 3 from node 1, then 3 pops before 2.
	res, err = dijkstra.Dijkstra(g, 1, dijkstra.WithMode[string](dijkstra.MarkOnDiscovery))
	if err != nil {
		t.Fatal(err)
	}
	if want := (ids{1, 2, 3, 5, 4}); !reflect.DeepEqual(res.Order, want) {
		t.Errorf("discovery Order = %v; want %v", res.Order, want)
	}
}

func TestDijkstra_EqualCostsMatchBFSHops(t *testing.T) {
	const cost = 3
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 15; trial++ {
		g := core.NewGraph[int, int]()
		for i := 0; i < 90; i++ {
			u, v := core.NodeIndex(rng.Intn(30)), core.NodeIndex(rng.Intn(30))
			g.AddEdge(u, int(u), v, int(v), cost)
		}
		start := g.Nodes()[0]
		hops, err := bfs.BFS(g, start)
		if err != nil {
			t.Fatal(err)
		}

		for _, mode := range []dijkstra.Mode{dijkstra.FinalizeOnPop, dijkstra.MarkOnDiscovery} {
			res, err := dijkstra.Dijkstra(g, start, dijkstra.WithMode[int](mode))
			if err != nil {
				t.Fatal(err)
			}
			for _, id := range g.Nodes() {
				d, ok := res.Distance(id)
				depth, reached := hops.Depth[id]
				if ok != reached {
					t.Fatalf("trial %d mode %v: node %d reachable=%v; bfs=%v", trial, mode, id, ok, reached)
				}
				if ok && d != depth*cost {
					t.Fatalf("trial %d mode %v: dist(%d) = %d; want %d", trial, mode, id, d, depth*cost)
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. Reachability, early exit and cancellation.
// ------------------------------------------------------------------------

func TestDijkstra_DisconnectedStaysInfinite(t *testing.T) {
	g := triangle()
	g.AddNode(9, "island")

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath[string]())
	if err != nil {
		t.Fatal(err)
	}
	if !core.IsInfinite(res.Dist[9]) {
		t.Errorf("Dist[9] = %d; want infinity", res.Dist[9])
	}
	if res.Reachable(9) {
		t.Error("node 9 must be unreachable")
	}
	if _, err := res.PathTo(9); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("PathTo(9): expected ErrNoPath, got %v", err)
	}
}

func TestDijkstra_PathNotRecorded(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Prev != nil {
		t.Errorf("Prev = %v; want nil without WithReturnPath", res.Prev)
	}
	if _, err := res.PathTo(3); !errors.Is(err, dijkstra.ErrPathNotRecorded) {
		t.Errorf("expected ErrPathNotRecorded, got %v", err)
	}
}

func TestDijkstra_SingleNodeAndSelfLoop(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddEdge(1, "A", 1, "A", 4)

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, ids{1}) || res.Dist[1] != 0 {
		t.Errorf("Order = %v Dist = %v; want [1] and 0", res.Order, res.Dist)
	}
}

func TestDijkstra_VisitorStops(t *testing.T) {
	for _, mode := range []dijkstra.Mode{dijkstra.FinalizeOnPop, dijkstra.MarkOnDiscovery} {
		var seen ids
		res, err := dijkstra.Dijkstra(triangle(), 1,
			dijkstra.WithMode[string](mode),
			dijkstra.WithVisitFunc(func(n core.Node[string]) bool {
				seen = append(seen, n.ID)
				return n.Value == "B"
			}),
		)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Stopped {
			t.Errorf("mode %v: Stopped = false", mode)
		}
		if !reflect.DeepEqual(seen, ids{1, 2}) || !reflect.DeepEqual(res.Order, ids{1, 2}) {
			t.Errorf("mode %v: seen %v order %v; want [1 2]", mode, seen, res.Order)
		}
	}
}

func TestDijkstra_VisitorStopsAtStart(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(), 1, dijkstra.WithVisitor(core.StopAt[string](1)))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Stopped || !reflect.DeepEqual(res.Order, ids{1}) {
		t.Errorf("Stopped=%v Order=%v; want true [1]", res.Stopped, res.Order)
	}
}

func TestDijkstra_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dijkstra.Dijkstra(triangle(), 1, dijkstra.WithContext[string](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res == nil {
		t.Fatal("partial result must be returned on cancellation")
	}
}

func TestDijkstra_DoesNotMutateGraph(t *testing.T) {
	g := triangle()
	before := g.Clone()
	first, _ := dijkstra.Dijkstra(g, 1)
	second, _ := dijkstra.Dijkstra(g, 1)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ: %+v vs %+v", first, second)
	}
	for _, id := range before.Nodes() {
		a, _ := before.Edges(id)
		b, _ := g.Edges(id)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("edges of %d changed: %v -> %v", id, a, b)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Cost kinds.
// ------------------------------------------------------------------------

func TestDijkstra_FloatCosts(t *testing.T) {
	g := core.NewGraph[string, float64]()
	g.AddEdge(1, "", 2, "", 0.5)
	g.AddEdge(2, "", 3, "", 0.25)
	g.AddEdge(1, "", 3, "", 1)
	g.AddNode(4, "")

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(3); d != 0.75 {
		t.Errorf("Distance(3) = %v; want 0.75", d)
	}
	if !math.IsInf(res.Dist[4], 1) {
		t.Errorf("Dist[4] = %v; want +Inf", res.Dist[4])
	}
}

func TestDijkstra_UnsignedCosts(t *testing.T) {
	g := core.NewGraph[string, uint8]()
	g.AddEdge(1, "", 2, "", 200)
	g.AddEdge(2, "", 3, "", 10)
	g.AddNode(4, "")

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(3); !ok || d != 210 {
		t.Errorf("Distance(3) = %d, %v; want 210, true", d, ok)
	}
	if res.Dist[4] != math.MaxUint8 {
		t.Errorf("Dist[4] = %d; want %d", res.Dist[4], math.MaxUint8)
	}
}

func TestDijkstra_IntegerSumsSaturate(t *testing.T) {
	// 100+100 does not fit in int8; it must not wrap to -56.
	g := core.NewGraph[string, int8]()
	g.AddEdge(1, "", 2, "", 100)
	g.AddEdge(2, "", 3, "", 100)

	for _, m := range []dijkstra.Mode{dijkstra.FinalizeOnPop, dijkstra.MarkOnDiscovery} {
		res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithMode[string](m))
		if err != nil {
			t.Fatal(err)
		}
		if d, ok := res.Distance(3); ok {
			t.Errorf("%s: Distance(3) = %d, true; want unreachable", m, d)
		}
		if res.Dist[3] != math.MaxInt8 {
			t.Errorf("%s: Dist[3] = %d; want %d", m, res.Dist[3], math.MaxInt8)
		}
	}

	// A detour that fits wins over the overflowing one.
	g.AddEdge(1, "", 4, "", 20)
	g.AddEdge(4, "", 3, "", 100)
	for _, m := range []dijkstra.Mode{dijkstra.FinalizeOnPop, dijkstra.MarkOnDiscovery} {
		res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithMode[string](m))
		if err != nil {
			t.Fatal(err)
		}
		if d, ok := res.Distance(3); !ok || d != 120 {
			t.Errorf("%s: Distance(3) = %d, %v; want 120, true", m, d, ok)
		}
	}
}
