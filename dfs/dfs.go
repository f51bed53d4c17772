// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph.
//
// Instead of recursing, the walker keeps an explicit stack of frames, each a
// node plus a cursor into that node's adjacency sequence. The top frame is
// resumed where it left off, which reproduces the recursive pre-order exactly
// while keeping deep graphs off the goroutine stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// frame is one stack entry: node id, position of the next edge to inspect,
// and the node's depth in the DFS tree.
type frame struct {
	id     core.NodeIndex
	cursor int
	depth  int
}

// walker encapsulates state during DFS.
type walker[V any, C core.Cost] struct {
	graph *core.Graph[V, C]
	opts  Options[V]
	res   *Result
	stack []frame
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (roots in ascending index order, start
// is ignored); otherwise it starts only from start.
//
// The visitor sees every reached node exactly once, at discovery. The graph is
// not modified; repeated calls yield identical results.
//
// Returns the Result and, when aborted by the context or OnExit, the error
// together with the partial Result.
func DFS[V any, C core.Cost](g *core.Graph[V, C], start core.NodeIndex, opts ...Option[V]) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.NumberOfNodes()
	w := &walker[V, C]{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]core.NodeIndex, 0, n),
			Finish:  make([]core.NodeIndex, 0, n),
			Depth:   make(map[core.NodeIndex]int, n),
			Parent:  make(map[core.NodeIndex]core.NodeIndex, n),
			Visited: make(map[core.NodeIndex]bool, n),
		},
	}

	// 5. Traverse: forest or single tree
	roots := []core.NodeIndex{start}
	if o.FullTraversal {
		roots = g.Nodes()
	}
	for _, root := range roots {
		if w.res.Visited[root] {
			continue
		}
		if err := w.traverse(root); err != nil || w.res.Stopped {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *walker[V, C]) traverse(root core.NodeIndex) error {
	if w.discover(root, 0) {
		return nil
	}
	w.stack = append(w.stack[:0], frame{id: root})

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		e, ok := w.graph.EdgeAt(top.id, top.cursor)
		if !ok {
			// cursor exhausted: post-order exit
			if err := w.exit(top.id); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		top.cursor++

		if w.res.Visited[e.Tail] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.Tail) {
			w.res.SkippedNeighbors++
			continue
		}
		depth := top.depth + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[e.Tail] = top.id
		if w.discover(e.Tail, depth) {
			return nil
		}
		// top may be invalidated by this append; it is not used afterwards.
		w.stack = append(w.stack, frame{id: e.Tail, depth: depth})
	}

	return nil
}

// discover marks id visited at depth and hands it to the visitor.
// Reports whether the visitor asked to stop.
func (w *walker[V, C]) discover(id core.NodeIndex, depth int) bool {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.Visitor == nil {
		return false
	}
	n, _ := w.graph.Node(id)
	if w.opts.Visitor.Visit(n) {
		w.res.Stopped = true
		return true
	}

	return false
}

// exit runs the post-order hook and records the finish order.
func (w *walker[V, C]) exit(id core.NodeIndex) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Finish = append(w.res.Finish, id)

	return nil
}
