// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node insertion and id-keyed queries.
// Determinism:
//   - IDs() and arena indices follow insertion order.
// Concurrency:
//   - Catalog reads under mu.RLock, insertion under mu.Lock.

package core

import "fmt"

// AddNode registers a new node with the given id and returns its arena index.
// The node starts with distance Infinity, no predecessor and no edges.
//
// Errors:
//   - ErrGraphFrozen:      the graph was frozen by a run.
//   - ErrDuplicateNode:    id is already registered (duplicates are rejected, not merged).
//   - ErrMaxNodesExceeded: WithMaxNodes bound reached.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return NoNode, ErrGraphFrozen
	}
	if _, ok := g.index[id]; ok {
		return NoNode, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	if g.maxNodes > 0 && len(g.nodes) >= g.maxNodes {
		return NoNode, fmt.Errorf("%w: limit %d", ErrMaxNodesExceeded, g.maxNodes)
	}

	i := len(g.nodes)
	g.nodes = append(g.nodes, Node{
		id:       id,
		distance: Infinity,
		previous: NoNode,
	})
	g.index[id] = i

	return i, nil
}

// HasNode reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]
	return ok
}

// Index returns the arena index of id.
// Complexity: O(1).
func (g *Graph) Index(id NodeID) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return NoNode, false
	}
	return i, true
}

// Node returns the node registered under id, or (nil, false).
// The pointer aliases arena storage: a later AddNode may grow the arena and
// leave it stale. Hold it only once the graph is frozen, or keep the index
// from Index and call At instead.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.nodes[i], true
}

// At returns the node stored at arena index i. It panics if i is out of range,
// like a slice access; indices come from Index, AddNode or Edge.To.
//
// At does not lock: the arena never shrinks, and after Freeze it never grows.
func (g *Graph) At(i int) *Node {
	return &g.nodes[i]
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// IDs returns every registered id in insertion order.
// Complexity: O(V) time and space.
func (g *Graph) IDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = g.nodes[i].id
	}
	return ids
}
