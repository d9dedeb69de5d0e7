package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mindelay/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip edges by returning false. Called for each edge
	// from → to with its weight.
	FilterEdge func(from, to core.NodeID, w core.Weight) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.NodeID, int) error { return nil },
		FilterEdge: func(core.NodeID, core.NodeID, core.Weight) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(from, to core.NodeID, w core.Weight) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node id → hop count from the start.
//   - Parent: node id → predecessor in the BFS tree (the start has none).
type Result struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-hop path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
