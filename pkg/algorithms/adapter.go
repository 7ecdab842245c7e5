// Package algorithms provides the registered battery of centrality and
// influence metrics computed by the runner in pkg/metrics. Rank, path and
// hub/authority metrics are backed by gonum's graph packages; spectral and
// trust metrics are iterative implementations on top of gonum/mat and
// gonum/graph/path.
package algorithms

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
)

// ToGonum converts a component view into a gonum weighted directed graph.
// Local view indices become gonum node ids. Undirected views insert both arc
// directions so directed algorithms see the symmetric closure. The weights
// slice is aligned with view.Edges(); missing entries default to 1.0.
// Self-loops are dropped: gonum's simple graphs reject them and none of the
// registered metrics are defined over them.
func ToGonum(view *graph.View, weights []float64) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	for i := 0; i < view.NumNodes(); i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	for k, e := range view.Edges() {
		if e[0] == e[1] {
			continue
		}
		w := 1.0
		if k < len(weights) {
			w = weights[k]
		}
		u := simple.Node(int64(e[0]))
		v := simple.Node(int64(e[1]))
		g.SetWeightedEdge(simple.WeightedEdge{F: u, T: v, W: w})
		if !view.Directed() {
			g.SetWeightedEdge(simple.WeightedEdge{F: v, T: u, W: w})
		}
	}

	return g
}

// scoresToValues flattens a gonum score map into a view-local array. Nodes
// absent from the map default to zero: gonum omits vertices whose score is an
// exact zero (betweenness in particular), which is a real value, not a
// missing one.
func scoresToValues(scores map[int64]float64, n int) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		if score, ok := scores[int64(i)]; ok {
			values[i] = score
		}
	}
	return values
}
