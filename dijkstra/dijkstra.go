// Package dijkstra implements Dijkstra's shortest-path algorithm between one
// source and one destination of a core.Graph.
//
// The frontier is a pqueue.Heap seeded with every node of the graph at
// distance Infinity; the source is then lowered to 0 with decrease-key. Each
// iteration extracts the closest node, relaxes its outgoing edges with
// decrease-key, and the run stops as soon as the destination is extracted.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - V extractions, each O(log V).
//   - At most E decrease-key operations, each O(log V).
//   - Heap build and label reset are O(V).
//   - Space: O(V) for the heap array and its position index.
//
// Notes on implementation choices:
//
//   - Labels (distance, previous) live on the graph's nodes; a run resets them
//     first, so repeated runs on the same graph give identical results.
//   - A run holds the graph exclusively (core.Graph.Acquire) and freezes it.
//   - Edge relaxation saturates at Infinity instead of wrapping around.
//   - Cancellation is cooperative: ctx is checked once per extraction.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mindelay/core"
	"github.com/katalvlaran/mindelay/pqueue"
)

// ShortestPath computes the shortest path from source to dest in g.
//
// Returns:
//
//   - *Path: hops in travel order, total distance and run statistics.
//   - error: nil on success, otherwise one of
//
//     ErrNilGraph, ErrInvalidDest, ErrInvalidSource  (validation, before any heap exists)
//     core.ErrGraphBusy                              (another run owns the graph)
//     ErrNoPath                                      (dest unreachable)
//     context.Canceled / context.DeadlineExceeded    (wrapped)
//
// Validation order follows the command-line tool: the destination is checked
// before the source.
func ShortestPath(ctx context.Context, g *core.Graph, source, dest core.NodeID, opts ...Option) (*Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	di, ok := g.Index(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDest, dest)
	}
	si, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, source)
	}

	if err := g.Acquire(); err != nil {
		return nil, err
	}
	defer g.Release()
	g.Freeze()

	p := newProbe(cfg)
	ctx, span := p.startRunSpan(ctx, source, dest, cfg.RunID)
	defer span.End()
	start := time.Now()

	r := &runner{g: g, options: cfg, dest: di}
	path, err := r.run(ctx, si)

	outcome := outcomeOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNoPath):
		outcome = outcomeNoPath
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCanceled
	default:
		outcome = outcomeError
	}
	p.finish(ctx, span, outcome, r.stats, time.Since(start), err)

	cfg.Logger.DebugContext(ctx, "shortest path run finished",
		slog.String("run_id", cfg.RunID),
		slog.Uint64("source", uint64(source)),
		slog.Uint64("dest", uint64(dest)),
		slog.String("outcome", outcome),
		slog.Int("extracted", r.stats.Extracted),
		slog.Int("relaxed", r.stats.Relaxed),
		slog.Int("improved", r.stats.Improved),
		slog.Duration("elapsed", time.Since(start)),
	)

	if err != nil {
		return nil, err
	}
	return path, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph  // input graph; labels owned by this run
	options Options      // run configuration
	h       *pqueue.Heap // frontier, discarded when the run returns
	dest    int          // arena index of the destination
	stats   Stats        // work counters
}

// run drives init → process → reconstruction.
func (r *runner) run(ctx context.Context, source int) (*Path, error) {
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(ctx); err != nil {
		return nil, err
	}

	if !r.g.At(r.dest).Reached() {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, r.g.At(source).ID(), r.g.At(r.dest).ID())
	}
	path, err := reconstruct(r.g, source, r.dest)
	if err != nil {
		return nil, err
	}
	path.Stats = r.stats

	return path, nil
}

// init resets labels, builds the heap over every node and lowers the source to 0.
func (r *runner) init(source int) error {
	r.g.ResetLabels()

	h, err := pqueue.New(r.g)
	if err != nil {
		return fmt.Errorf("dijkstra: build heap: %w", err)
	}
	r.h = h

	if err = r.h.DecreaseDistance(source, 0, core.NoNode); err != nil {
		return fmt.Errorf("dijkstra: seed source: %w", err)
	}
	return r.check()
}

// process is the main loop. It ends when the heap is exhausted, when the
// closest remaining node is unreachable, or when the destination is extracted.
func (r *runner) process(ctx context.Context) error {
	for !r.h.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: run interrupted: %w", err)
		}

		u, err := r.h.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}
		r.stats.Extracted++

		// Everything left in the heap is at Infinity: unreachable from source.
		if !r.g.At(u).Reached() {
			return nil
		}

		// The destination's label is final once extracted.
		if u == r.dest {
			return nil
		}

		if err = r.relax(u); err != nil {
			return err
		}
		if err = r.check(); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge of the finalized node u and lowers the key
// of any neighbor reached more cheaply through u.
func (r *runner) relax(u int) error {
	n := r.g.At(u)
	d := n.Distance()

	for _, e := range n.Edges() {
		r.stats.Relaxed++

		alt, ok := addWeight(d, e.Weight)
		if !ok {
			continue
		}
		// Strict "<": equal-cost alternatives keep the first predecessor found.
		if alt >= r.g.At(e.To).Distance() {
			continue
		}

		if err := r.h.DecreaseDistance(e.To, alt, u); err != nil {
			return fmt.Errorf("dijkstra: relax %d -> %d: %w", n.ID(), r.g.At(e.To).ID(), err)
		}
		r.stats.Improved++
	}

	return nil
}

// check validates the heap when invariant checks are enabled.
func (r *runner) check() error {
	if !r.options.CheckInvariants {
		return nil
	}
	return r.h.Validate()
}

// addWeight returns d + w, or (Infinity, false) when the sum would not be
// representable as a finite Distance.
func addWeight(d core.Distance, w core.Weight) (core.Distance, bool) {
	if core.Distance(w) >= core.Infinity-d {
		return core.Infinity, false
	}
	return d + core.Distance(w), true
}
