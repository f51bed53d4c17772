// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (K_1 is a single isolated node).
//   - Edges i–j for every i<j, i ascending then j ascending.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[V any, C core.Cost](n int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.edge(g, i, j)
			}
		}

		return nil
	}
}
