package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

type (
	opt  = builder.Option[string, int]
	cons = builder.Constructor[string, int]
)

// logicalEdges is the number of AddEdge calls that produced g.
func logicalEdges[V any, C core.Cost](g *core.Graph[V, C]) int {
	return g.NumberOfEdgeRecords() / 2
}

// tails lists the tails of id's adjacency in insertion order.
func tails[V any, C core.Cost](g *core.Graph[V, C], id core.NodeIndex) []core.NodeIndex {
	edges, _ := g.Edges(id)
	out := make([]core.NodeIndex, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Tail)
	}

	return out
}

func TestTopologies_Sizes(t *testing.T) {
	cases := []struct {
		name         string
		con          cons
		nodes, edges int
	}{
		{"path", builder.Path[string, int](5), 5, 4},
		{"cycle", builder.Cycle[string, int](5), 5, 5},
		{"star", builder.Star[string, int](6), 6, 5},
		{"wheel", builder.Wheel[string, int](6), 6, 10},
		{"complete", builder.Complete[string, int](5), 5, 10},
		{"k1", builder.Complete[string, int](1), 1, 0},
		{"grid", builder.Grid[string, int](3, 4), 12, 17},
		{"random p=1", builder.RandomSparse[string, int](6, 1), 6, 15},
		{"random p=0", builder.RandomSparse[string, int](6, 0), 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph[string, int](nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NumberOfNodes())
			assert.Equal(t, tc.edges, logicalEdges(g))
		})
	}
}

func TestTopologies_TooSmall(t *testing.T) {
	for name, con := range map[string]cons{
		"path":     builder.Path[string, int](1),
		"cycle":    builder.Cycle[string, int](2),
		"star":     builder.Star[string, int](1),
		"wheel":    builder.Wheel[string, int](3),
		"complete": builder.Complete[string, int](0),
		"grid":     builder.Grid[string, int](0, 3),
		"random":   builder.RandomSparse[string, int](0, 0.5),
	} {
		_, err := builder.BuildGraph[string, int](nil, nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestPath_EdgeOrderAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []opt{
		builder.WithFirstID[string, int](10),
		builder.WithValueFn[string, int](func(id core.NodeIndex) string { return "n" + strconv.Itoa(int(id)) }),
		builder.WithCost[string, int](7),
	}, builder.Path[string, int](3))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeIndex{10, 11, 12}, g.Nodes())
	assert.Equal(t, []core.NodeIndex{10, 12}, tails(g, 11))
	n, ok := g.Node(12)
	require.True(t, ok)
	assert.Equal(t, "n12", n.Value)
	e, ok := g.EdgeAt(10, 0)
	require.True(t, ok)
	assert.Equal(t, 7, e.Cost)
}

func TestWheel_HubLast(t *testing.T) {
	g, err := builder.BuildGraph[string, int](nil, nil, builder.Wheel[string, int](5))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{0, 1, 2, 3}, tails(g, 4))
	assert.Equal(t, 3, g.Degree(0))
}

func TestGrid_RowMajor(t *testing.T) {
	g, err := builder.BuildGraph[string, int](nil, nil, builder.Grid[string, int](2, 3))
	require.NoError(t, err)
	// 0 1 2
	// 3 4 5
	assert.Equal(t, []core.NodeIndex{1, 3}, tails(g, 0))
	assert.Equal(t, []core.NodeIndex{1, 3, 5}, tails(g, 4))
}

func TestRandomSparse_NeedsRand(t *testing.T) {
	_, err := builder.BuildGraph[string, int](nil, nil, builder.RandomSparse[string, int](5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph[string, int](nil, nil, builder.RandomSparse[string, int](5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph[string, int] {
		g, err := builder.BuildGraph(nil, []opt{
			builder.WithSeed[string, int](42),
			builder.WithCostRange[string, int](1, 100),
		}, builder.RandomSparse[string, int](30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.Nodes(), b.Nodes())
	for _, id := range a.Nodes() {
		ea, _ := a.Edges(id)
		eb, _ := b.Edges(id)
		assert.Equal(t, ea, eb, "node %d", id)
		for _, e := range ea {
			assert.GreaterOrEqual(t, e.Cost, 1)
			assert.Less(t, e.Cost, 100)
		}
	}
}

func TestOptions_Violations(t *testing.T) {
	for name, o := range map[string]opt{
		"negative cost": builder.WithCost[string, int](-1),
		"bad range":     builder.WithCostRange[string, int](5, 1),
		"nil value fn":  builder.WithValueFn[string, int](nil),
		"nil cost fn":   builder.WithCostFn[string, int](nil),
		"nil rand":      builder.WithRand[string, int](nil),
	} {
		_, err := builder.BuildGraph(nil, []opt{o}, builder.Path[string, int](2))
		assert.ErrorIs(t, err, builder.ErrOptionViolation, name)
	}

	_, err := builder.BuildGraph(nil, []opt{builder.WithCostRange[string, int](1, 2)}, builder.Path[string, int](2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph[string, int](nil, nil, builder.Path[string, int](2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Composition(t *testing.T) {
	// Constructors run in order against one graph.
	g, err := builder.BuildGraph(nil, []opt{
		builder.WithRand[string, int](rand.New(rand.NewSource(1))),
		builder.WithCostFn[string, int](func(r *rand.Rand) int { return 1 + r.Intn(3) }),
	}, builder.Cycle[string, int](3), builder.Star[string, int](3))
	require.NoError(t, err)
	// Star(3) reuses ids 0..2 and adds 0–1, 0–2 on top of the triangle.
	assert.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 5, logicalEdges(g))
}
