// SPDX-License-Identifier: MIT
// Package: mindelay/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   - rows×cols orthogonal grid, 4-neighborhood.
//   - Cell (r,c) has index r*cols+c and id cfg.idFn(r*cols+c).
//   - Each neighboring pair gets both arcs, right/bottom first then the reverse.
//
// Complexity: O(rows*cols) nodes + O(4*rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols bidirectional grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addNodes(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, cur, cur+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, cur, cur+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// link adds i→j then j→i, each with its own drawn weight.
func link(g *core.Graph, cfg builderConfig, i, j int) error {
	if err := addEdge(methodGrid, g, cfg, i, j); err != nil {
		return err
	}
	return addEdge(methodGrid, g, cfg, j, i)
}
