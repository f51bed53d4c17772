package commands

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dfs"
	"github.com/katalvlaran/ugraph/dijkstra"
	"github.com/katalvlaran/ugraph/internal/graphfile"
)

// Algorithm names accepted by batch.
const (
	algoBFS      = "bfs"
	algoDFS      = "dfs"
	algoDijkstra = "dijkstra"
)

// runParams holds the knobs shared by the traversal commands.
type runParams struct {
	algo     string
	start    core.NodeIndex
	maxDepth int
	stopAt   *core.NodeIndex
	full     bool
	mode     dijkstra.Mode
	target   *core.NodeIndex
}

// run executes one traversal over g.
func run(ctx context.Context, g *graphfile.Graph, p runParams) (report, error) {
	switch p.algo {
	case algoBFS:
		return runBFS(ctx, g, p)
	case algoDFS:
		return runDFS(ctx, g, p)
	case algoDijkstra:
		return runDijkstra(ctx, g, p)
	default:
		return report{}, fmt.Errorf("unknown algorithm %q (want bfs, dfs or dijkstra)", p.algo)
	}
}

func runBFS(ctx context.Context, g *graphfile.Graph, p runParams) (report, error) {
	opts := []bfs.Option[string]{
		bfs.WithContext[string](ctx),
		bfs.WithMaxDepth[string](p.maxDepth),
	}
	if p.stopAt != nil {
		opts = append(opts, bfs.WithVisitor(core.StopAt[string](*p.stopAt)))
	}
	res, err := bfs.BFS(g, p.start, opts...)
	if err != nil {
		return report{}, err
	}
	start := p.start

	return report{Algorithm: algoBFS, Start: &start, Order: res.Order, Stopped: res.Stopped}, nil
}

func runDFS(ctx context.Context, g *graphfile.Graph, p runParams) (report, error) {
	opts := []dfs.Option[string]{
		dfs.WithContext[string](ctx),
		dfs.WithMaxDepth[string](p.maxDepth),
	}
	if p.stopAt != nil {
		opts = append(opts, dfs.WithVisitor(core.StopAt[string](*p.stopAt)))
	}
	if p.full {
		opts = append(opts, dfs.WithFullTraversal[string]())
	}
	res, err := dfs.DFS(g, p.start, opts...)
	if err != nil {
		return report{}, err
	}
	r := report{Algorithm: algoDFS, Order: res.Order, Finish: res.Finish, Stopped: res.Stopped}
	if !p.full {
		start := p.start
		r.Start = &start
	}

	return r, nil
}

func runDijkstra(ctx context.Context, g *graphfile.Graph, p runParams) (report, error) {
	opts := []dijkstra.Option[string]{
		dijkstra.WithContext[string](ctx),
		dijkstra.WithMode[string](p.mode),
	}
	if p.target != nil {
		opts = append(opts, dijkstra.WithReturnPath[string]())
	}
	if p.stopAt != nil {
		opts = append(opts, dijkstra.WithVisitor(core.StopAt[string](*p.stopAt)))
	}
	res, err := dijkstra.Dijkstra(g, p.start, opts...)
	if err != nil {
		return report{}, err
	}

	start := p.start
	r := report{
		Algorithm: algoDijkstra,
		Mode:      res.Mode.String(),
		Start:     &start,
		Order:     res.Order,
		Stopped:   res.Stopped,
	}
	for _, id := range g.Nodes() {
		d := distance{Node: id}
		if c, ok := res.Distance(id); ok {
			d.Cost = &c
		}
		r.Distances = append(r.Distances, d)
	}
	if p.target != nil {
		target := *p.target
		r.Target = &target
		if path, err := res.PathTo(target); err == nil {
			r.Path = path
		}
	}

	return r, nil
}
