package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/graph/network"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

const (
	pagerankDamping   = 0.85 // standard damping factor
	pagerankTolerance = 1e-6 // convergence tolerance
)

// pagerankFn computes PageRank scores using gonum's network package. The
// metric is structural: edge weights are ignored and rank flows along
// out-degree-uniform transitions.
func pagerankFn(view *graph.View, _ []float64) (metrics.AlgorithmResult, error) {
	g := ToGonum(view, nil)

	scores := network.PageRank(g, pagerankDamping, pagerankTolerance)
	if len(scores) == 0 {
		return metrics.AlgorithmResult{}, fmt.Errorf("pagerank returned no scores")
	}

	return metrics.AlgorithmResult{Values: scoresToValues(scores, view.NumNodes())}, nil
}
