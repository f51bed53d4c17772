// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and discovery order.
//
// BFS explores nodes in non-decreasing edge count from a start node,
// with an optional early-exit visitor, depth limiting and neighbor filtering.
package bfs

import (
	"context"

	"github.com/katalvlaran/ugraph/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	id    core.NodeIndex
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker[V any, C core.Cost] struct {
	graph *core.Graph[V, C]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// The start node is marked first and handed to the visitor; then nodes are
// dequeued in FIFO order and their adjacency sequences scanned in insertion
// order. Every unvisited tail is marked, handed to the visitor, and enqueued.
// A visitor returning true ends the search at once with Result.Stopped set.
//
// The graph is not modified: visited state lives in the returned Result.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
// On cancellation the partial Result is returned alongside the error.
func BFS[V any, C core.Cost](g *core.Graph[V, C], start core.NodeIndex, opts ...Option[V]) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	startNode, ok := g.Node(start)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	n := g.NumberOfNodes()
	w := &walker[V, C]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.NodeIndex, 0, n),
			Depth:  make(map[core.NodeIndex]int, n),
			Parent: make(map[core.NodeIndex]core.NodeIndex, n),
		},
	}

	if w.discover(startNode, 0) {
		return w.res, nil
	}

	return w.res, w.loop()
}

// discover marks n visited at depth d, hands it to the visitor and, unless
// the visitor asked to stop, enqueues it. Reports whether to stop.
func (w *walker[V, C]) discover(n core.Node[V], d int) (stop bool) {
	w.res.Depth[n.ID] = d
	w.res.Order = append(w.res.Order, n.ID)
	if w.opts.Visitor != nil && w.opts.Visitor.Visit(n) {
		w.res.Stopped = true
		return true
	}
	w.queue = append(w.queue, queueItem{id: n.ID, depth: d})

	return false
}

// loop processes the queue until empty, visitor stop, or cancellation.
func (w *walker[V, C]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		stop, err := w.expand(item)
		if err != nil || stop {
			return err
		}
	}

	return nil
}

// expand scans item's adjacency sequence and discovers each unseen tail.
func (w *walker[V, C]) expand(item queueItem) (bool, error) {
	edges, _ := w.graph.Edges(item.id)
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return false, nil
	}

	for _, e := range edges {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		if w.res.Visited(e.Tail) || !w.opts.FilterNeighbor(item.id, e.Tail) {
			continue
		}
		tail, ok := w.graph.Node(e.Tail)
		if !ok {
			continue // AddEdge always stores both endpoints
		}
		w.res.Parent[e.Tail] = item.id
		if w.discover(tail, next) {
			return true, nil
		}
	}

	return false, nil
}
