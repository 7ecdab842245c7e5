package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/graph/network"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

const hitsTolerance = 1e-8

// hitsFn computes hub and authority scores using gonum's HITS implementation.
// It is the only multi-output algorithm in the battery: the result carries the
// authority array first and the hub array second, matching the declared role
// order on the registered Algorithm.
func hitsFn(view *graph.View, _ []float64) (metrics.AlgorithmResult, error) {
	g := ToGonum(view, nil)
	if g.Edges().Len() == 0 {
		// HITS never converges when there is no edge to carry score mass
		return metrics.AlgorithmResult{}, fmt.Errorf("hits undefined on edgeless component")
	}

	scores := network.HITS(g, hitsTolerance)
	if len(scores) == 0 {
		return metrics.AlgorithmResult{}, fmt.Errorf("hits returned no scores")
	}

	n := view.NumNodes()
	authority := make([]float64, n)
	hub := make([]float64, n)
	for i := 0; i < n; i++ {
		if ha, ok := scores[int64(i)]; ok {
			authority[i] = ha.Authority
			hub[i] = ha.Hub
		}
	}

	return metrics.AlgorithmResult{Roles: [][]float64{authority, hub}}, nil
}
