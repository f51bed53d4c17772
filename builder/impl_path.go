// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes 0..n-1 in ascending order, then edges (i-1)–i for i=1..n-1;
//     Cycle closes with (n-1)–0.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path[V any, C core.Cost](n int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		chain(g, cfg, n)

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle[V any, C core.Cost](n int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		chain(g, cfg, n)
		cfg.edge(g, n-1, 0)

		return nil
	}
}

// chain adds nodes 0..n-1 and the n-1 path edges between them.
func chain[V any, C core.Cost](g *core.Graph[V, C], cfg builderConfig[V, C], n int) {
	for i := 0; i < n; i++ {
		cfg.node(g, i)
	}
	for i := 1; i < n; i++ {
		cfg.edge(g, i-1, i)
	}
}
