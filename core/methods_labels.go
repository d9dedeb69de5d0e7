// SPDX-License-Identifier: MIT
//
// File: methods_labels.go
// Role: Shortest-path label mutation and run ownership (Freeze, Acquire/Release).
// Concurrency:
//   - Labels are NOT guarded by mu. A run must hold Acquire before touching them.
//   - Freeze/Frozen use mu; Acquire/Release use an atomic flag.

package core

// SetLabel overwrites the distance and predecessor labels of the node at arena
// index i. prev must be NoNode or a valid arena index.
// Complexity: O(1).
func (g *Graph) SetLabel(i int, d Distance, prev int) {
	n := &g.nodes[i]
	n.distance = d
	n.previous = prev
}

// ResetLabels restores every node to distance Infinity with no predecessor, so
// consecutive runs over the same graph start from identical state.
// Complexity: O(V).
func (g *Graph) ResetLabels() {
	for i := range g.nodes {
		g.nodes[i].distance = Infinity
		g.nodes[i].previous = NoNode
	}
}

// Freeze makes the graph read-only: later AddNode/AddEdge calls return
// ErrGraphFrozen. Freeze is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Acquire claims exclusive ownership of the node labels for one run.
// It returns ErrGraphBusy if another run holds them. Every successful Acquire
// must be paired with Release.
func (g *Graph) Acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrGraphBusy
	}
	return nil
}

// Release gives up label ownership taken by Acquire.
func (g *Graph) Release() {
	g.busy.Store(false)
}
