package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
)

func pathView(t *testing.T, n int, directed bool) *graph.View {
	t.Helper()
	g := graph.NewGraph(n, directed)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i
	}
	return graph.NewView(g, vertices)
}

func triangleView(t *testing.T) *graph.View {
	t.Helper()
	g := graph.NewGraph(3, false)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	return graph.NewView(g, []int{0, 1, 2})
}

func unitWeights(view *graph.View) []float64 {
	weights := make([]float64, view.NumEdges())
	for i := range weights {
		weights[i] = 1.0
	}
	return weights
}

func TestToGonum(t *testing.T) {
	view := pathView(t, 3, false)
	g := ToGonum(view, nil)

	assert.Equal(t, 3, g.Nodes().Len())
	// undirected path: both arc directions present
	assert.NotNil(t, g.Edge(0, 1))
	assert.NotNil(t, g.Edge(1, 0))
	assert.Nil(t, g.Edge(0, 2))
}

func TestToGonumDirected(t *testing.T) {
	view := pathView(t, 3, true)
	g := ToGonum(view, nil)

	assert.NotNil(t, g.Edge(0, 1))
	assert.Nil(t, g.Edge(1, 0))
}

func TestToGonumSkipsSelfLoops(t *testing.T) {
	g := graph.NewGraph(2, false)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	view := graph.NewView(g, []int{0, 1})

	gg := ToGonum(view, nil)
	assert.NotNil(t, gg.Edge(0, 1))
	assert.Nil(t, gg.Edge(0, 0))
}

func TestPageRankSumsToOne(t *testing.T) {
	view := pathView(t, 5, false)
	result, err := pagerankFn(view, nil)
	require.NoError(t, err)
	require.Len(t, result.Values, 5)

	sum := 0.0
	for _, v := range result.Values {
		assert.Greater(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	// symmetric path: endpoints score below interior vertices
	assert.Less(t, result.Values[0], result.Values[2])
}

func TestBetweennessPathGraph(t *testing.T) {
	view := pathView(t, 3, false)
	result, err := betweennessFn(view, nil)
	require.NoError(t, err)
	require.Len(t, result.Values, 3)

	assert.Equal(t, 0.0, result.Values[0])
	assert.Greater(t, result.Values[1], 0.0)
	assert.Equal(t, 0.0, result.Values[2])
}

func TestClosenessPathGraph(t *testing.T) {
	view := pathView(t, 3, false)
	result, err := closenessFn(2)(view, nil)
	require.NoError(t, err)
	require.Len(t, result.Values, 3)

	// middle vertex: farness 2 -> 0.5; endpoints: farness 3 -> 1/3
	assert.InDelta(t, 0.5, result.Values[1], 1e-12)
	assert.InDelta(t, 1.0/3.0, result.Values[0], 1e-12)
	assert.InDelta(t, 1.0/3.0, result.Values[2], 1e-12)
}

func TestClosenessIsolatedVertexIsInfinite(t *testing.T) {
	g := graph.NewGraph(1, false)
	view := graph.NewView(g, []int{0})

	result, err := closenessFn(1)(view, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(result.Values[0], 1))
}

func TestHarmonicPathGraph(t *testing.T) {
	view := pathView(t, 3, false)
	result, err := harmonicFn(2)(view, nil)
	require.NoError(t, err)

	// middle: 1/1 + 1/1 = 2; endpoints: 1/1 + 1/2 = 1.5
	assert.InDelta(t, 2.0, result.Values[1], 1e-12)
	assert.InDelta(t, 1.5, result.Values[0], 1e-12)
}

func TestHitsRoles(t *testing.T) {
	view := pathView(t, 4, false)
	result, err := hitsFn(view, nil)
	require.NoError(t, err)

	require.Len(t, result.Roles, 2)
	require.Len(t, result.Roles[0], 4)
	require.Len(t, result.Roles[1], 4)
	for _, role := range result.Roles {
		for _, v := range role {
			assert.False(t, math.IsNaN(v))
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestHitsEdgelessComponentFails(t *testing.T) {
	g := graph.NewGraph(1, false)
	view := graph.NewView(g, []int{0})

	_, err := hitsFn(view, nil)
	assert.Error(t, err)
}

func TestEigenvectorTriangleIsUniform(t *testing.T) {
	view := triangleView(t)
	result, err := eigenvectorFn(view, unitWeights(view))
	require.NoError(t, err)
	require.Len(t, result.Values, 3)

	expected := 1.0 / math.Sqrt(3)
	for _, v := range result.Values {
		assert.InDelta(t, expected, v, 1e-6)
	}
}

func TestEigenvectorEdgelessVertexFails(t *testing.T) {
	g := graph.NewGraph(1, false)
	view := graph.NewView(g, []int{0})

	_, err := eigenvectorFn(view, nil)
	assert.Error(t, err)
}

func TestKatzSingleVertex(t *testing.T) {
	g := graph.NewGraph(1, false)
	view := graph.NewView(g, []int{0})

	result, err := katzFn(view, nil)
	require.NoError(t, err)
	assert.InDelta(t, katzBeta, result.Values[0], 1e-9)
}

func TestKatzPathGraph(t *testing.T) {
	view := pathView(t, 5, false)
	result, err := katzFn(view, unitWeights(view))
	require.NoError(t, err)

	// interior vertices accumulate more walks than endpoints
	assert.Greater(t, result.Values[2], result.Values[0])
	for _, v := range result.Values {
		assert.Greater(t, v, 0.0)
	}
}

func TestEigentrustSingleEdge(t *testing.T) {
	g := graph.NewGraph(2, false)
	require.NoError(t, g.AddEdge(0, 1))
	view := graph.NewView(g, []int{0, 1})

	result, err := eigentrustFn(view, []float64{0.8})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Values[0], 1e-6)
	assert.InDelta(t, 0.5, result.Values[1], 1e-6)
}

func TestEigentrustEdgelessComponentFails(t *testing.T) {
	g := graph.NewGraph(1, false)
	view := graph.NewView(g, []int{0})

	_, err := eigentrustFn(view, nil)
	assert.Error(t, err)
}

func TestTrustTransitivityPath(t *testing.T) {
	view := pathView(t, 3, false)
	result, err := trustTransitivityFn(view, []float64{0.5, 0.5})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Values[0], 1e-12)
	assert.InDelta(t, 0.5, result.Values[1], 1e-12)
	assert.InDelta(t, 0.25, result.Values[2], 1e-12)
}

func TestTrustTransitivityUnreachableIsZero(t *testing.T) {
	// directed edge 1 -> 0: nothing is reachable from source vertex 0
	g := graph.NewGraph(2, true)
	require.NoError(t, g.AddEdge(1, 0))
	view := graph.NewView(g, []int{0, 1})

	result, err := trustTransitivityFn(view, []float64{0.9})
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Values[0])
	assert.Equal(t, 0.0, result.Values[1])
}

func TestDefaultBattery(t *testing.T) {
	battery := Default(DefaultOptions())
	require.Len(t, battery, 9)

	var names []string
	for _, alg := range battery {
		names = append(names, alg.ColumnNames()...)
	}
	assert.Equal(t, []string{
		"pagerank", "betweenness", "closeness", "harmonic",
		"eigenvector", "katz", "hits_authority", "hits_hub",
		"eigentrust", "trust_transitivity",
	}, names)
}
