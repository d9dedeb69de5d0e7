// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mindelay/core"
	"github.com/stretchr/testify/require"
)

// Common node ids used across core tests.
const (
	Node1 core.NodeID = 1
	Node2 core.NodeID = 2
	Node3 core.NodeID = 3
	Node7 core.NodeID = 7

	NodeMissing core.NodeID = 99
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   core.Weight = 0
	Weight3   core.Weight = 3
	Weight5   core.Weight = 5
	Weight100 core.Weight = 100
)

// buildTriangle returns nodes {1,2,3} with edges 1→2(5), 2→3(3), 1→3(100).
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []core.NodeID{Node1, Node2, Node3} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(Node1, Node2, Weight5))
	require.NoError(t, g.AddEdge(Node2, Node3, Weight3))
	require.NoError(t, g.AddEdge(Node1, Node3, Weight100))

	return g
}
