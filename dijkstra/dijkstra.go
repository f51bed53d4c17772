// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum-cost distance from a single start node to all
// other reachable nodes in a graph with non-negative edge costs.
// It processes nodes through a min-heap ordered by ascending distance, with
// equal distances broken by descending NodeIndex (the higher index pops first).
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative costs and fail fast.
//   - FinalizeOnPop uses a "lazy" decrease-key strategy: duplicates are pushed
//     and stale entries are ignored when popped.
//   - MarkOnDiscovery never pushes a node twice.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Dijkstra computes distances from start to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrBadMode).
//  3. g must contain start (ErrStartNodeNotFound).
//  4. No edge in g can have a negative cost (ErrNegativeWeight) or a
//     NaN cost (ErrNaNWeight).
//
// Path sums saturate at core.Infinity[C](): for integer kinds a distance
// that would overflow is reported as unreachable instead of wrapping.
//
// The graph is not modified; every run owns its visited set and heap.
// On context cancellation the partial Result is returned with the error.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E) (O(V) under MarkOnDiscovery)
func Dijkstra[V any, C core.Cost](g *core.Graph[V, C], start core.NodeIndex, opts ...Option[V]) (*Result[C], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build and validate Options
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate start exists in the graph
	startNode, ok := g.Node(start)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	// 4) Pre-scan all edges to detect negative or NaN costs.
	nodes := g.Nodes()
	for _, e := range g.EdgeList() {
		if core.IsNaN(e.Cost) {
			return nil, fmt.Errorf("%w: edge %d→%d", ErrNaNWeight, e.Head, e.Tail)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d cost=%v", ErrNegativeWeight, e.Head, e.Tail, e.Cost)
		}
	}

	// 5) Every node starts at +∞ except start.
	inf := core.Infinity[C]()
	r := &runner[V, C]{
		g:       g,
		cfg:     cfg,
		inf:     inf,
		visited: make(map[core.NodeIndex]bool, len(nodes)),
		pq:      make(distanceHeap[C], 0, len(nodes)),
		res: &Result[C]{
			Dist:  make(map[core.NodeIndex]C, len(nodes)),
			Order: make([]core.NodeIndex, 0, len(nodes)),
			Mode:  cfg.Mode,
		},
	}
	for _, id := range nodes {
		r.res.Dist[id] = inf
	}
	r.res.Dist[start] = 0
	if cfg.ReturnPath {
		r.res.Prev = make(map[core.NodeIndex]core.NodeIndex, len(nodes))
	}

	// 6) Run the selected variant.
	var err error
	if cfg.Mode == MarkOnDiscovery {
		err = r.markOnDiscovery(startNode)
	} else {
		err = r.finalizeOnPop(start)
	}

	return r.res, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V any, C core.Cost] struct {
	g       *core.Graph[V, C]
	cfg     Options[V]
	inf     C
	visited map[core.NodeIndex]bool
	pq      distanceHeap[C]
	res     *Result[C]
}

// visit appends id to Order and consults the visitor.
func (r *runner[V, C]) visit(n core.Node[V]) (stop bool) {
	r.res.Order = append(r.res.Order, n.ID)
	if r.cfg.Visitor != nil && r.cfg.Visitor.Visit(n) {
		r.res.Stopped = true
		return true
	}

	return false
}

// add returns a + b for non-negative costs, clamped to Infinity.
func (r *runner[V, C]) add(a, b C) C {
	if a >= r.inf-b {
		return r.inf
	}

	return a + b
}

// cancelled reports the context error, if any.
func (r *runner[V, C]) cancelled() error {
	select {
	case <-r.cfg.Ctx.Done():
		return r.cfg.Ctx.Err()
	default:
		return nil
	}
}

// finalizeOnPop is classical lazy-decrease-key Dijkstra.
func (r *runner[V, C]) finalizeOnPop(start core.NodeIndex) error {
	heap.Push(&r.pq, distanceItem[C]{id: start, dist: 0})

	for r.pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}

		// 1) Pop the best entry; skip stale duplicates.
		item := heap.Pop(&r.pq).(distanceItem[C])
		if r.visited[item.id] {
			continue
		}

		// 2) Settle it: its distance is now final.
		r.visited[item.id] = true
		n, _ := r.g.Node(item.id)
		if r.visit(n) {
			return nil
		}

		// 3) Relax outgoing edges.
		edges, _ := r.g.Edges(item.id)
		for _, e := range edges {
			if r.visited[e.Tail] {
				continue
			}
			nd := r.add(item.dist, e.Cost)
			if nd >= r.res.Dist[e.Tail] {
				continue
			}
			r.res.Dist[e.Tail] = nd
			if r.res.Prev != nil {
				r.res.Prev[e.Tail] = item.id
			}
			heap.Push(&r.pq, distanceItem[C]{id: e.Tail, dist: nd})
		}
	}

	return nil
}

// markOnDiscovery fixes a node's distance the first time an edge reaches it.
func (r *runner[V, C]) markOnDiscovery(startNode core.Node[V]) error {
	r.visited[startNode.ID] = true
	if r.visit(startNode) {
		return nil
	}
	heap.Push(&r.pq, distanceItem[C]{id: startNode.ID, dist: 0})

	for r.pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(distanceItem[C])
		edges, _ := r.g.Edges(item.id)
		for _, e := range edges {
			if r.visited[e.Tail] {
				continue
			}
			r.visited[e.Tail] = true
			r.res.Dist[e.Tail] = r.add(r.res.Dist[item.id], e.Cost)
			if r.res.Prev != nil {
				r.res.Prev[e.Tail] = item.id
			}
			tail, _ := r.g.Node(e.Tail)
			if r.visit(tail) {
				return nil
			}
			heap.Push(&r.pq, distanceItem[C]{id: e.Tail, dist: r.res.Dist[e.Tail]})
		}
	}

	return nil
}

// distanceItem is a heap entry: a node and its tentative distance.
type distanceItem[C core.Cost] struct {
	id   core.NodeIndex
	dist C
}

// distanceHeap is a min-heap of distanceItem ordered by ascending dist,
// ties broken by descending id.
type distanceHeap[C core.Cost] []distanceItem[C]

// Len returns the number of items in the heap.
func (h distanceHeap[C]) Len() int { return len(h) }

// Less puts the smaller distance first; on a tie the larger id goes first.
func (h distanceHeap[C]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id > h[j].id
}

// Swap swaps two elements in the heap.
func (h distanceHeap[C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x; called by heap.Push.
func (h *distanceHeap[C]) Push(x any) { *h = append(*h, x.(distanceItem[C])) }

// Pop removes the last element; called by heap.Pop.
func (h *distanceHeap[C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
