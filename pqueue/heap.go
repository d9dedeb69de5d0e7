package pqueue

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

// Heap is an indexed min-heap of arena indices of g, ordered by distance label.
//
// The heap does not own the nodes: it reads keys through g.At and writes them
// through g.SetLabel. The caller must hold the graph's labels (core.Graph.Acquire)
// for the lifetime of the heap.
type Heap struct {
	s slots
}

// slots is the container/heap adapter. items[k] is the arena index stored in
// slot k; pos[i] is the slot of arena index i, or absent.
type slots struct {
	g     *core.Graph
	items []int
	pos   []int
}

func (s *slots) Len() int { return len(s.items) }

func (s *slots) Less(a, b int) bool {
	return s.g.At(s.items[a]).Distance() < s.g.At(s.items[b]).Distance()
}

func (s *slots) Swap(a, b int) {
	s.items[a], s.items[b] = s.items[b], s.items[a]
	s.pos[s.items[a]] = a
	s.pos[s.items[b]] = b
}

// Push is required by heap.Interface. Elements only enter through New.
func (s *slots) Push(x any) {
	i := x.(int)
	s.pos[i] = len(s.items)
	s.items = append(s.items, i)
}

func (s *slots) Pop() any {
	last := len(s.items) - 1
	i := s.items[last]
	s.items = s.items[:last]
	s.pos[i] = absent

	return i
}

// New builds a heap holding every node of g, keyed by its current distance
// label (Infinity for a freshly reset graph). The build is a single O(V)
// heapify, not V individual inserts.
func New(g *core.Graph) (*Heap, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.Len()
	h := &Heap{s: slots{
		g:     g,
		items: make([]int, n),
		pos:   make([]int, n),
	}}
	for i := 0; i < n; i++ {
		h.s.items[i] = i
		h.s.pos[i] = i
	}
	heap.Init(&h.s)

	return h, nil
}

// Len returns the number of nodes still in the heap.
func (h *Heap) Len() int { return len(h.s.items) }

// IsEmpty reports whether no nodes remain.
func (h *Heap) IsEmpty() bool { return len(h.s.items) == 0 }

// Contains reports whether arena index i is currently in the heap.
func (h *Heap) Contains(i int) bool {
	return i >= 0 && i < len(h.s.pos) && h.s.pos[i] != absent
}

// Position returns the heap slot of arena index i, or core.NoNode if absent.
func (h *Heap) Position(i int) int {
	if !h.Contains(i) {
		return core.NoNode
	}
	return h.s.pos[i]
}

// ExtractMin removes and returns the arena index with the smallest distance.
// The removed node's position entry is invalidated permanently.
func (h *Heap) ExtractMin() (int, error) {
	if h.IsEmpty() {
		return core.NoNode, ErrEmpty
	}
	return heap.Pop(&h.s).(int), nil
}

// DecreaseDistance lowers the key of arena index i to d, records prev as its
// predecessor and restores heap order by sifting the element up.
//
// Preconditions (checked, nothing is mutated on violation):
//   - i is in the heap (ErrNotInHeap otherwise);
//   - d is strictly smaller than the current key (ErrNotDecreasing otherwise).
func (h *Heap) DecreaseDistance(i int, d core.Distance, prev int) error {
	if !h.Contains(i) {
		return fmt.Errorf("%w: index %d", ErrNotInHeap, i)
	}
	if cur := h.s.g.At(i).Distance(); d >= cur {
		return fmt.Errorf("%w: %d >= %d", ErrNotDecreasing, d, cur)
	}

	h.s.g.SetLabel(i, d, prev)
	heap.Fix(&h.s, h.s.pos[i])

	return nil
}

// Validate checks the heap-order property (parent ≤ child) and that the
// position index agrees with the heap array for every slot and every node.
// Complexity: O(V).
func (h *Heap) Validate() error {
	s := &h.s
	for k := 1; k < len(s.items); k++ {
		if p := (k - 1) / 2; s.Less(k, p) {
			return fmt.Errorf("%w: slot %d (index %d) below parent slot %d (index %d)",
				ErrCorrupt, k, s.items[k], p, s.items[p])
		}
	}

	present := 0
	for i, k := range s.pos {
		if k == absent {
			continue
		}
		present++
		if k < 0 || k >= len(s.items) || s.items[k] != i {
			return fmt.Errorf("%w: position of index %d is %d", ErrCorrupt, i, k)
		}
	}
	if present != len(s.items) {
		return fmt.Errorf("%w: %d positions for %d slots", ErrCorrupt, present, len(s.items))
	}

	return nil
}
