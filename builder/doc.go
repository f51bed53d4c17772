// SPDX-License-Identifier: MIT
// Package: ugraph/builder

// Package builder assembles deterministic core.Graph fixtures from small,
// composable topology constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates a graph, resolves options, runs constructors in order.
//     – Constructor:  a closure that adds nodes and edges to a graph.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Options:
//     – WithFirstID:   offset for node ids (index i becomes firstID+i).
//     – WithValueFn:   node value per id (zero value by default).
//     – WithCost:      constant edge cost (1 by default).
//     – WithCostRange: uniform cost in [lo, hi) drawn from the rng.
//     – WithCostFn:    arbitrary cost generator.
//     – WithSeed / WithRand: rng for stochastic topologies and costs.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed yield identical graphs,
//     including adjacency insertion order.
//   - No panics: invalid parameters surface as sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrOptionViolation), wrapped with the constructor name.
//
// Example:
//
//	g, err := builder.BuildGraph[string, int](nil,
//	    []builder.Option[string, int]{builder.WithFirstID[string, int](1)},
//	    builder.Cycle[string, int](5),
//	)
package builder
