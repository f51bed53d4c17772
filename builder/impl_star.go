// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2. Index 0 is the center; spokes 0–i for i=1..n-1.
//   - Wheel: n ≥ 4. Rim is Cycle(n-1) over indices 0..n-2; the center is
//     index n-1 with spokes to every rim node in ascending order.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // the rim C_{n-1} needs at least 3 nodes
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star[V any, C core.Cost](n int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 1; i < n; i++ {
			cfg.edge(g, 0, i)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub.
func Wheel[V any, C core.Cost](n int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle[V, C](n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		cfg.node(g, hub)
		for i := 0; i < hub; i++ {
			cfg.edge(g, hub, i)
		}

		return nil
	}
}
