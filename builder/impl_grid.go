// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1.
//   - Cell (r,c) has index r*cols+c (row-major).
//   - For each cell in row-major order: the right neighbor edge first, then
//     the bottom neighbor edge.
//
// Complexity: O(R*C) nodes + O(R*C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a 4-neighborhood rows×cols grid.
func Grid[V any, C core.Cost](rows, cols int) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for i := 0; i < rows*cols; i++ {
			cfg.node(g, i)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					cfg.edge(g, u, u+1)
				}
				if r+1 < rows {
					cfg.edge(g, u, u+cols)
				}
			}
		}

		return nil
	}
}
