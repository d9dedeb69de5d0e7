// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and counting.
// Determinism:
//   - Outgoing edges keep insertion order.
// Concurrency:
//   - Insertion under mu.Lock, EdgeCount under mu.RLock.

package core

import "fmt"

// AddEdge appends a directed edge from → to with weight w to the source's
// outgoing list. Both endpoints must already be registered; AddEdge never
// creates nodes. Parallel edges and self-loops are accepted.
//
// Errors:
//   - ErrGraphFrozen:        the graph was frozen by a run.
//   - ErrUnknownSource:      from is not registered (matches ErrUnknownNode).
//   - ErrUnknownDestination: to is not registered (matches ErrUnknownNode).
//   - ErrMaxEdgesExceeded:   WithMaxEdges bound reached.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, w Weight) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrGraphFrozen
	}
	src, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSource, from)
	}
	dst, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownDestination, to)
	}
	if g.maxEdges > 0 && g.edgeCount >= g.maxEdges {
		return fmt.Errorf("%w: limit %d", ErrMaxEdgesExceeded, g.maxEdges)
	}

	n := &g.nodes[src]
	n.edges = append(n.edges, Edge{To: dst, Weight: w})
	g.edgeCount++

	return nil
}

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
