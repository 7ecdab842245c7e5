package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentViewMapping(t *testing.T) {
	g := buildTwoCliqueGraph(t)
	labels, _ := Components(g)

	view := NewComponentView(g, labels, 1)
	require.Equal(t, 5, view.NumNodes())
	assert.Equal(t, []int{5, 6, 7, 8, 9}, view.Vertices)

	assert.Equal(t, 7, view.GlobalID(2))
	local, ok := view.LocalID(9)
	require.True(t, ok)
	assert.Equal(t, 4, local)

	_, ok = view.LocalID(0)
	assert.False(t, ok)
}

func TestComponentViewEdges(t *testing.T) {
	g := buildTwoCliqueGraph(t)
	labels, _ := Components(g)

	view := NewComponentView(g, labels, 0)
	assert.Equal(t, 10, view.NumEdges()) // 5-clique

	for _, e := range view.Edges() {
		assert.GreaterOrEqual(t, e[0], 0)
		assert.Less(t, e[0], 5)
		assert.GreaterOrEqual(t, e[1], 0)
		assert.Less(t, e[1], 5)
	}
}

func TestViewExcludesCrossEdges(t *testing.T) {
	g := NewGraph(4, false)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	view := NewView(g, []int{0, 1, 3})
	assert.Equal(t, 3, view.NumNodes())
	// only 0-1 survives: 1-2 and 2-3 leave the vertex set
	assert.Equal(t, [][2]int{{0, 1}}, view.Edges())
}

func TestViewVertexOrderIsSorted(t *testing.T) {
	g := buildPathGraph(t, 6)
	view := NewView(g, []int{5, 0, 3})

	assert.Equal(t, []int{0, 3, 5}, view.Vertices)
}

func TestViewDirectedFlag(t *testing.T) {
	g := NewGraph(2, true)
	require.NoError(t, g.AddEdge(0, 1))

	view := NewView(g, []int{0, 1})
	assert.True(t, view.Directed())
	assert.Equal(t, [][2]int{{0, 1}}, view.Edges())
}
