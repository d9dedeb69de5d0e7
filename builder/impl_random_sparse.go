// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomEdges(n, m) constructors.
//
// RandomSparse: Erdős–Rényi over ordered pairs (i,j), i≠j, each kept with
// probability p. O(n²) trials.
//
// RandomEdges: m edges with endpoints drawn uniformly with replacement, so
// self-loops and parallel edges occur. O(n + m). Suited to large sparse
// benchmark graphs where O(n²) trials are too slow.
//
// Determinism: nodes in index order; trials in (i asc, j asc) or draw order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomEdges       = "RandomEdges"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed graph over n
// nodes with independent edge probability p. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addNodes(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng != nil && p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomEdges returns a Constructor that adds n nodes and m uniformly drawn
// directed edges. Requires an RNG.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomEdges, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d is negative: %w", methodRandomEdges, m, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
		}

		if err := addNodes(methodRandomEdges, g, cfg, n); err != nil {
			return err
		}
		for k := 0; k < m; k++ {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if err := addEdge(methodRandomEdges, g, cfg, i, j); err != nil {
				return err
			}
		}
		return nil
	}
}
