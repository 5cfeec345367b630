// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
)

func TestSnapshot_Empty(t *testing.T) {
	s := core.NewGraph().Snapshot()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.EdgeCount())
	assert.Empty(t, s.Labels())
	assert.Nil(t, s.Neighbors(0))
	assert.Equal(t, "", s.Label(0))
	assert.Equal(t, 0, s.Degree(-1))
}

// TestSnapshot_IndexingAndNeighbors verifies sorted NodeIDs and per-edge neighbor entries.
func TestSnapshot_IndexingAndNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge(VertexC, VertexA) // e1
	_, _ = g.AddEdge(VertexA, VertexB) // e2
	_, _ = g.AddEdge(VertexB, VertexA) // e3 (parallel)
	_, _ = g.AddEdge(VertexB, VertexB) // e4 (loop)
	require.NoError(t, g.AddVertex(VertexD))

	s := g.Snapshot()
	require.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.EdgeCount())
	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD}, s.Labels())

	a, ok := s.Index(VertexA)
	require.True(t, ok)
	b, _ := s.Index(VertexB)
	c, _ := s.Index(VertexC)
	d, _ := s.Index(VertexD)
	_, ok = s.Index("Z")
	assert.False(t, ok)

	assert.Equal(t, []core.NodeID{c, b, b}, s.Neighbors(a))
	assert.Equal(t, []core.NodeID{a, a}, s.Neighbors(b), "loops stay out of neighbor lists")
	assert.Equal(t, []core.NodeID{a}, s.Neighbors(c))
	assert.Empty(t, s.Neighbors(d))

	assert.Equal(t, 3, s.Degree(a))
	assert.Equal(t, 4, s.Degree(b), "two parallel ends plus a loop")
	assert.Equal(t, 1, s.Degree(c))
	assert.Equal(t, 0, s.Degree(d))
	assert.Equal(t, VertexC, s.Label(c))
}

// TestSnapshot_IsolatedFromLaterMutation verifies a snapshot is frozen.
func TestSnapshot_IsolatedFromLaterMutation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	s := g.Snapshot()

	_, _ = g.AddEdge(VertexB, VertexC)
	require.NoError(t, g.RemoveVertex(VertexA))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.EdgeCount())
	labels := s.Labels()
	labels[0] = "mutated"
	assert.Equal(t, VertexA, s.Label(0), "Labels returns a copy")
}
