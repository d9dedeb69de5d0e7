// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 1; directed edges i→i+1 for i in [0, n-2].
//   - Cycle: n ≥ 2; the Path edges plus the closing edge (n-1)→0.
//   - Nodes are added via cfg.idFn in ascending index order.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	minPathVertices  = 1
	minCycleVertices = 2
)

// Path returns a Constructor that builds the directed chain idFn(0) → ... → idFn(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		return chain(methodPath, g, cfg, n)
	}
}

// Cycle returns a Constructor that builds a directed ring of n nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := chain(methodCycle, g, cfg, n); err != nil {
			return err
		}
		return addEdge(methodCycle, g, cfg, n-1, 0)
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int) error {
	if err := addNodes(method, g, cfg, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := addEdge(method, g, cfg, i, i+1); err != nil {
			return err
		}
	}
	return nil
}
