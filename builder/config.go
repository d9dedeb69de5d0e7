// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = i+1   (1, 2, 3, ...)
//   - rng      = nil   (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mindelay/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Node id strategy: index -> id.
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order on top of the defaults; later
// options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     oneBasedID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func oneBasedID(i int) core.NodeID {
	return core.NodeID(i + 1)
}
