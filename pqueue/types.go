// Package pqueue implements an indexed binary min-heap over the nodes of a
// core.Graph, keyed by each node's distance label.
//
// Besides the heap array, the queue keeps a position index (arena index → heap
// slot) that is updated on every swap. The index turns decrease-key into an
// O(log n) sift-up instead of a lazy re-insertion, which is what keeps
// Dijkstra at O((V+E) log V) with exactly V heap entries.
//
// Complexity:
//
//	– New:              O(V)      bottom-up heapify
//	– ExtractMin:       O(log V)  root swap + sift-down
//	– DecreaseDistance: O(log V)  label update + sift-up
//	– Contains/Position/IsEmpty/Len: O(1)
//	– Validate:         O(V)
//
// Tie-break:
//
//	Comparisons are strict (<). Among equal keys the element nearer the root
//	stays put, and when both children of a slot are equal the left child is
//	promoted. For a given heap state ExtractMin is therefore deterministic.
//
// Errors (sentinel):
//
//	– ErrNilGraph      New was called with a nil graph.
//	– ErrEmpty         ExtractMin on an empty heap.
//	– ErrNotInHeap     DecreaseDistance on a node that is absent or already extracted.
//	– ErrNotDecreasing DecreaseDistance with a key that is not strictly smaller.
//	– ErrCorrupt       Validate found a heap-order or position-index violation.
package pqueue

import "errors"

// Sentinel errors returned by the indexed heap.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("pqueue: graph is nil")

	// ErrEmpty indicates ExtractMin was called on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")

	// ErrNotInHeap indicates the node is not (or no longer) present in the heap.
	ErrNotInHeap = errors.New("pqueue: node not in heap")

	// ErrNotDecreasing indicates the new key is not strictly smaller than the current one.
	ErrNotDecreasing = errors.New("pqueue: new distance does not decrease the key")

	// ErrCorrupt indicates an internal invariant violation detected by Validate.
	ErrCorrupt = errors.New("pqueue: heap invariant violated")
)

// absent marks a position-index entry for a node that is not in the heap.
const absent = -1
