// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// api.go - the BuildGraph orchestrator.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Never panics; returns sentinel errors wrapped as "BuildGraph: ...".

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Constructor adds one topology to g using the resolved configuration.
// Constructors validate parameters first and add nodes before edges, in
// ascending index order.
type Constructor[V any, C core.Cost] func(g *core.Graph[V, C], cfg builderConfig[V, C]) error

// BuildGraph creates a new core.Graph with gopts, resolves bopts, and applies
// cons in order. Several constructors may be combined; with equal ids their
// nodes merge (values are overwritten by the later constructor).
//
// Complexity: Σ cost of each constructor, plus O(len(bopts)).
func BuildGraph[V any, C core.Cost](gopts []core.GraphOption, bopts []Option[V, C], cons ...Constructor[V, C]) (*core.Graph[V, C], error) {
	// Resolve options; report the first invalid one.
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}
	if cfg.needRand && cfg.rng == nil {
		return nil, fmt.Errorf("BuildGraph: cost range: %w", ErrNeedRandSource)
	}

	g := core.NewGraph[V, C](gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
