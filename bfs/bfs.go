// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order. Edge weights are
// ignored unless a filter looks at them.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

// queueItem pairs an arena index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, following edges in
// their stored direction and insertion order.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
//
// BFS reads topology only and never touches distance labels. It must not run
// concurrently with AddEdge; a frozen graph is always safe.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	si, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	w.enqueue(si, 0, core.NoNode)
	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent and queues it.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	id := w.graph.At(idx).ID()
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = w.graph.At(parent).ID()
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		id := w.graph.At(item.idx).ID()
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	from := w.graph.At(item.idx)
	for _, e := range from.Edges() {
		if w.visited[e.To] {
			continue
		}
		if !w.opts.FilterEdge(from.ID(), w.graph.At(e.To).ID(), e.Weight) {
			continue
		}
		w.enqueue(e.To, next, item.idx)
	}
}
