package algorithms

import (
	"gonum.org/v1/gonum/graph/network"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

// betweennessFn computes shortest-path betweenness centrality via gonum's
// Brandes implementation. Hop counts are used as path lengths; vertices gonum
// omits from the score map have betweenness exactly zero.
func betweennessFn(view *graph.View, _ []float64) (metrics.AlgorithmResult, error) {
	g := ToGonum(view, nil)

	scores := network.Betweenness(g)

	return metrics.AlgorithmResult{Values: scoresToValues(scores, view.NumNodes())}, nil
}
