// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mindelay/core"
)

// BuilderOption customizes construction by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node id generator: index -> id. The function must be
// injective over the indices a constructor uses. Panics on nil.
func WithIDScheme(fn func(int) core.NodeID) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
