// SPDX-License-Identifier: MIT

// Package builder composes deterministic core.Graph fixtures for tests,
// benchmarks and examples.
//
// BuildGraph creates a graph and applies Constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 50)},
//	    builder.Grid(10, 10),
//	)
//
// Constructors:
//   - Path(n), Cycle(n): directed chain and ring.
//   - Grid(rows, cols): bidirectional 4-neighborhood grid.
//   - RandomSparse(n, p): Erdős–Rényi over ordered pairs.
//   - RandomEdges(n, m): m uniformly drawn edges.
//
// Node ids default to 1..n (WithIDScheme overrides); weights default to 1
// (WithWeightFn, WithConstantWeight, WithUniformWeight override). Equal
// options and seed always produce an identical graph.
package builder
