// Package mindelay finds minimum-delay paths in directed graphs whose edge
// weights are non-negative integer delays, and renders them as Graphviz DOT.
//
// Layout:
//
//	core        arena-backed graph: nodes by id, adjacency lists, distance labels
//	pqueue      indexed min-heap keyed by tentative distance
//	dijkstra    single-pair shortest path with early exit and path reconstruction
//	loader      CSV node and edge file parsing into a core.Graph
//	dot         DOT rendering of a path
//	bfs         hop-count traversal used for reachability diagnostics
//	builder     deterministic graph fixtures for tests and benchmarks
//	cmd/mindelay  the command-line tool
//
// Quick start:
//
//	g, err := loader.LoadFiles(ctx, "nodes.csv", "edges.csv")
//	if err != nil { /* handle */ }
//	p, err := dijkstra.ShortestPath(ctx, g, 1, 42)
//	if err != nil { /* ErrNoPath, ErrInvalidSource, ErrInvalidDest, ... */ }
//	_ = dot.Write(os.Stdout, p)
package mindelay
