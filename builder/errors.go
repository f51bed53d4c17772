// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go - sentinel errors of the builder package.
//
// Callers branch with errors.Is; constructors wrap them as
// "<Method>: <details>: %w".

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when p is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic step runs without an rng.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is returned when an option was given an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
