// Package dijkstra computes the minimum-delay path between two nodes of a
// directed, non-negatively weighted core.Graph.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from a source node and stops as soon
//     as the destination is finalized, so nodes farther away are never relaxed.
//   - The frontier is an indexed min-heap (package pqueue) holding exactly one
//     entry per node; decrease-key replaces the lazy re-insertion strategy.
//   - Reconstruct walks the predecessor labels back from the destination and
//     returns the hops in travel order.
//
// When to use:
//
//   - Single-pair queries on static graphs loaded once and queried repeatedly.
//   - Routing over link delays or costs where every weight is a non-negative integer.
//
// Key features:
//
//   - Deterministic: ties between equal distances are broken by heap layout,
//     which depends only on insertion order, so repeated runs give identical paths.
//   - Overflow-safe: distances are uint64 and an edge whose sum would reach
//     Infinity is treated as impassable.
//   - Cancelable: ctx is honored between extractions.
//   - Observable: every run opens an OpenTelemetry span and records counters
//     and a latency histogram; Debug-level summaries go to an optional slog.Logger.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) beyond the graph itself.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      nil *core.Graph.
//   - ErrInvalidDest:   destination id not present (checked first).
//   - ErrInvalidSource: source id not present.
//   - ErrNoPath:        destination unreachable.
//   - ErrBrokenChain:   predecessor labels do not lead back to the source.
//   - core.ErrGraphBusy: another run currently owns the graph's labels.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddNode(1)
//	_, _ = g.AddNode(2)
//	_ = g.AddEdge(1, 2, 5)
//	p, err := dijkstra.ShortestPath(ctx, g, 1, 2)
//	// p.Distance == 5, p.Hops == [{1 2 5}]
package dijkstra
