// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1; p ∈ [0,1].
//   - Pairs i<j are scanned i ascending, j ascending; each edge is kept with
//     probability p (one rng draw per pair).
//   - p=0 and p=1 need no rng; anything in between returns ErrNeedRandSource
//     without one.
//
// Complexity: O(n²) draws; expected O(p·n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse[V any, C core.Cost](n int, p float64) Constructor[V, C] {
	return func(g *core.Graph[V, C], cfg builderConfig[V, C]) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					cfg.edge(g, i, j)
				}
			}
		}

		return nil
	}
}
