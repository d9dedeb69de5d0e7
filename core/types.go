// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph declarations, sentinel errors, GraphOption and NewGraph.
// Invariants:
//   - nodes is an arena; an arena index is stable for the lifetime of the Graph.
//   - index maps every registered NodeID to exactly one arena slot.
//   - every Edge.To is a valid arena index at insertion time.

package core

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
)

// Sentinel errors for graph store operations.
var (
	// ErrDuplicateNode indicates AddNode was called with an id that is already registered.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrUnknownNode indicates an operation referenced an id that is not registered.
	// ErrUnknownSource and ErrUnknownDestination wrap it so callers may match either.
	ErrUnknownNode = errors.New("core: unknown node id")

	// ErrUnknownSource indicates AddEdge referenced an unregistered source id.
	ErrUnknownSource = wrapSentinel(ErrUnknownNode, "edge source")

	// ErrUnknownDestination indicates AddEdge referenced an unregistered destination id.
	ErrUnknownDestination = wrapSentinel(ErrUnknownNode, "edge destination")

	// ErrMaxNodesExceeded indicates the node arena reached its configured capacity.
	ErrMaxNodesExceeded = errors.New("core: maximum node count exceeded")

	// ErrMaxEdgesExceeded indicates the edge budget reached its configured capacity.
	ErrMaxEdgesExceeded = errors.New("core: maximum edge count exceeded")

	// ErrGraphFrozen indicates a mutation was attempted after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")

	// ErrGraphBusy indicates Acquire was called while another run owns the labels.
	ErrGraphBusy = errors.New("core: graph labels are owned by another run")
)

// NoNode is the arena index used for "no predecessor" and "absent" references.
const NoNode = -1

// Infinity is the distance label of a node that has not been reached.
// It is the largest representable Distance and is never produced by a finite sum.
const Infinity Distance = math.MaxUint64

// NodeID is the caller-supplied, unsigned identifier of a node.
// Ids need not be contiguous.
type NodeID uint32

// Weight is the non-negative delay carried by an edge.
type Weight uint32

// Distance is an accumulated path weight.
type Distance uint64

// Edge is a directed, immutable connection to the node stored at arena index To.
type Edge struct {
	// To is the arena index of the destination node.
	To int

	// Weight is the edge delay.
	Weight Weight
}

// Node is a vertex of the graph together with its shortest-path labels.
//
// The labels (distance, previous) are the only mutable algorithm state. They are
// owned by whichever run currently holds the graph (see Graph.Acquire).
type Node struct {
	id       NodeID
	distance Distance
	previous int    // arena index of the predecessor, or NoNode
	edges    []Edge // outgoing edges in insertion order
}

// ID returns the caller-supplied node identifier.
func (n *Node) ID() NodeID { return n.id }

// Distance returns the current tentative (or final) distance label.
func (n *Node) Distance() Distance { return n.distance }

// Previous returns the arena index of the predecessor on the best known path, or NoNode.
func (n *Node) Previous() int { return n.previous }

// Edges returns the outgoing edges in insertion order.
// The slice is owned by the graph and must not be modified.
func (n *Node) Edges() []Edge { return n.edges }

// Reached reports whether the node carries a finite distance label.
func (n *Node) Reached() bool { return n.distance != Infinity }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node arena and id index for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// WithMaxNodes bounds the number of nodes the graph accepts; AddNode beyond the
// bound returns ErrMaxNodesExceeded. Zero means unbounded.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxNodes = n
		}
	}
}

// WithMaxEdges bounds the total number of edges; AddEdge beyond the bound returns
// ErrMaxEdgesExceeded. Zero means unbounded.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxEdges = n
		}
	}
}

// Graph is the in-memory directed, weighted graph store.
//
// Nodes live in an arena addressed by int indices; edges and predecessor links are
// indices into that arena, so no node ever owns another. mu guards the catalog
// (nodes, index, edgeCount, frozen) during construction and lookups. Label access
// through At/SetLabel is unguarded and valid only for the run holding Acquire.
type Graph struct {
	mu sync.RWMutex // guards nodes, index, edgeCount, frozen

	// Configuration
	capacity int // initial arena capacity hint
	maxNodes int // 0 = unbounded
	maxEdges int // 0 = unbounded

	// Storage
	nodes     []Node         // arena, insertion order
	index     map[NodeID]int // NodeID → arena index
	edgeCount int            // total edges across all nodes
	frozen    bool           // set by Freeze; rejects further insertions

	busy atomic.Bool // label ownership flag (Acquire/Release)
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(capacity) for the pre-sized arena, O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make([]Node, 0, g.capacity)
	g.index = make(map[NodeID]int, g.capacity)

	return g
}

// sentinelError specialises a parent sentinel while keeping errors.Is matching on it.
type sentinelError struct {
	parent error
	what   string
}

func (e *sentinelError) Error() string { return e.parent.Error() + " (" + e.what + ")" }
func (e *sentinelError) Unwrap() error { return e.parent }

func wrapSentinel(parent error, what string) error {
	return &sentinelError{parent: parent, what: what}
}
