package algorithms

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

// logWeightGraph exposes a trust-weighted graph under -log-transformed edge
// weights, turning the max-product trust path problem into a shortest-path
// problem. Trust values are clamped to (0, 1]; a zero-trust edge maps to an
// infinite distance.
type logWeightGraph struct {
	*simple.WeightedDirectedGraph
}

func (g logWeightGraph) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return 0, true
	}
	w, ok := g.WeightedDirectedGraph.Weight(xid, yid)
	if !ok {
		return 0, false
	}
	if w <= 0 {
		return math.Inf(1), true
	}
	if w > 1 {
		w = 1
	}
	return -math.Log(w), true
}

// trustTransitivityFn computes transitive trust from a designated source
// vertex: the maximum product of edge trust values over any path from the
// source to each vertex. No explicit source is configured, so the first
// vertex in the component's iteration order is used. The source itself scores
// 1; vertices unreachable from the source score 0.
func trustTransitivityFn(view *graph.View, weights []float64) (metrics.AlgorithmResult, error) {
	n := view.NumNodes()
	g := ToGonum(view, weights)

	shortest := path.DijkstraFrom(g.Node(0), logWeightGraph{g})

	values := make([]float64, n)
	for t := 0; t < n; t++ {
		values[t] = math.Exp(-shortest.WeightTo(int64(t)))
	}

	return metrics.AlgorithmResult{Values: values}, nil
}
