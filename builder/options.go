// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// options.go - functional options resolved into an immutable builderConfig.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ugraph/core"
)

// builderConfig is the resolved configuration handed to every Constructor.
type builderConfig[V any, C core.Cost] struct {
	firstID core.NodeIndex
	valueFn func(core.NodeIndex) V
	costFn  func(*rand.Rand) C
	rng     *rand.Rand

	needRand bool  // costFn draws from rng
	err      error // first invalid option
}

// Option mutates builderConfig before BuildGraph runs the constructors.
type Option[V any, C core.Cost] func(*builderConfig[V, C])

// newBuilderConfig applies opts over the defaults: ids from 0, zero values,
// constant cost 1, no rng.
func newBuilderConfig[V any, C core.Cost](opts ...Option[V, C]) builderConfig[V, C] {
	cfg := builderConfig[V, C]{
		valueFn: zeroValue[V],
		costFn:  func(*rand.Rand) C { return 1 },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// zeroValue is the default value function.
func zeroValue[V any](core.NodeIndex) V {
	var zero V
	return zero
}

// id maps a topology index to its node id.
func (c builderConfig[V, C]) id(i int) core.NodeIndex {
	return c.firstID + core.NodeIndex(i)
}

// edge adds the undirected edge between topology indices i and j.
func (c builderConfig[V, C]) edge(g *core.Graph[V, C], i, j int) {
	u, v := c.id(i), c.id(j)
	g.AddEdge(u, c.valueFn(u), v, c.valueFn(v), c.costFn(c.rng))
}

// node inserts the node for topology index i.
func (c builderConfig[V, C]) node(g *core.Graph[V, C], i int) {
	id := c.id(i)
	g.AddNode(id, c.valueFn(id))
}

// WithFirstID shifts every generated id by first.
func WithFirstID[V any, C core.Cost](first core.NodeIndex) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		c.firstID = first
	}
}

// WithValueFn sets the value stored for each generated node.
func WithValueFn[V any, C core.Cost](fn func(core.NodeIndex) V) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil value function", ErrOptionViolation)
			return
		}
		c.valueFn = fn
	}
}

// WithCost gives every edge the same non-negative cost.
func WithCost[V any, C core.Cost](cost C) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		if cost < 0 {
			c.err = fmt.Errorf("%w: cost %v < 0", ErrOptionViolation, cost)
			return
		}
		c.costFn = func(*rand.Rand) C { return cost }
		c.needRand = false
	}
}

// WithCostRange draws each cost uniformly from [lo, hi); integer kinds
// truncate. Requires WithSeed or WithRand.
func WithCostRange[V any, C core.Cost](lo, hi float64) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		if lo < 0 || hi < lo {
			c.err = fmt.Errorf("%w: cost range [%g,%g)", ErrOptionViolation, lo, hi)
			return
		}
		span := hi - lo
		c.costFn = func(r *rand.Rand) C { return C(lo + r.Float64()*span) }
		c.needRand = true
	}
}

// WithCostFn installs a custom cost generator; r is nil unless an rng is set.
func WithCostFn[V any, C core.Cost](fn func(r *rand.Rand) C) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil cost function", ErrOptionViolation)
			return
		}
		c.costFn = fn
		c.needRand = false
	}
}

// WithSeed installs a fresh rng seeded with seed.
func WithSeed[V any, C core.Cost](seed int64) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the rng.
func WithRand[V any, C core.Cost](r *rand.Rand) Option[V, C] {
	return func(c *builderConfig[V, C]) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil rng", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}
