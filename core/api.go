// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot facade (Stats).
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes and limits.
type GraphStats struct {
	NodeCount int  // registered nodes
	EdgeCount int  // total outgoing edges
	MaxNodes  int  // configured node bound, 0 = unbounded
	MaxEdges  int  // configured edge bound, 0 = unbounded
	Frozen    bool // Freeze has been called
	SelfLoops int  // edges whose destination is their own source
	Sinks     int  // nodes with no outgoing edges
}

// Stats produces a deterministic snapshot of the graph catalog.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
		MaxNodes:  g.maxNodes,
		MaxEdges:  g.maxEdges,
		Frozen:    g.frozen,
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if len(n.edges) == 0 {
			stats.Sinks++
			continue
		}
		for _, e := range n.edges {
			if e.To == i {
				stats.SelfLoops++
			}
		}
	}

	return &stats
}
