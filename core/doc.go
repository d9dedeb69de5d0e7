// Package core provides the graph store used by the shortest-path engine: a
// directed, weighted graph with id-keyed lookup and per-node outgoing-edge
// iteration.
//
// Representation:
//
//   - Nodes live in an arena ([]Node) in insertion order; a map[NodeID]int gives
//     O(1) id → arena-index lookup.
//   - Each Node owns its outgoing []Edge; an Edge stores the destination's arena
//     index and a non-negative Weight.
//   - The predecessor link (Node.Previous) is an arena index as well, so the
//     predecessor graph never creates ownership cycles.
//
// Lifecycle:
//
//  1. NewGraph(opts...)                       - empty store
//  2. AddNode(id) / AddEdge(from, to, w)      - sequential population
//  3. Freeze()                                - read-only from here on
//  4. Acquire() … SetLabel/ResetLabels … Release() - one run at a time
//
// Policies:
//
//   - AddNode rejects duplicate ids with ErrDuplicateNode.
//   - AddEdge never creates nodes; an unknown endpoint yields ErrUnknownSource or
//     ErrUnknownDestination, both matching ErrUnknownNode under errors.Is.
//   - WithMaxNodes / WithMaxEdges turn unbounded growth into ErrMaxNodesExceeded /
//     ErrMaxEdgesExceeded.
//
// Complexity:
//
//   - AddNode, AddEdge, Index, Node, At, SetLabel: O(1) (amortized for inserts).
//   - ResetLabels, IDs, Stats: O(V) or O(V+E).
//
// Errors:
//
//	ErrDuplicateNode      - AddNode with an id already present.
//	ErrUnknownNode        - parent of ErrUnknownSource / ErrUnknownDestination.
//	ErrMaxNodesExceeded   - node bound reached.
//	ErrMaxEdgesExceeded   - edge bound reached.
//	ErrGraphFrozen        - insertion after Freeze.
//	ErrGraphBusy          - Acquire while another run owns the labels.
package core
