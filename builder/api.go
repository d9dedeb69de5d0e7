// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// api.go - public entry point for composing deterministic graph fixtures.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Same inputs, options, seed and constructor order produce identical graphs.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of each constructor's cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

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

// addNodes inserts ids cfg.idFn(0..n-1) in ascending index order.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}
	return nil
}

// addEdge draws a weight and inserts the directed edge idFn(i) → idFn(j).
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}
	return nil
}
