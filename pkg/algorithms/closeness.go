package algorithms

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

// closenessFn returns a closeness centrality algorithm: the reciprocal of the
// total shortest-path distance from a vertex to every vertex it can reach.
// A vertex that reaches nothing gets +Inf, which the sanitizer downstream
// turns into a missing value.
func closenessFn(workers int) metrics.AlgorithmFunc {
	return func(view *graph.View, _ []float64) (metrics.AlgorithmResult, error) {
		g := ToGonum(view, nil)
		n := view.NumNodes()
		dist := allDistances(g, n, workers)

		values := make([]float64, n)
		for u := 0; u < n; u++ {
			farness := 0.0
			reached := false
			for t := 0; t < n; t++ {
				if t == u || math.IsInf(dist[u][t], 1) {
					continue
				}
				farness += dist[u][t]
				reached = true
			}
			if !reached {
				values[u] = math.Inf(1)
				continue
			}
			values[u] = 1.0 / farness
		}

		return metrics.AlgorithmResult{Values: values}, nil
	}
}

// harmonicFn returns a harmonic centrality algorithm: the sum of reciprocal
// shortest-path distances to every other vertex. Unreachable vertices
// contribute zero, so the metric stays finite on weakly connected directed
// components.
func harmonicFn(workers int) metrics.AlgorithmFunc {
	return func(view *graph.View, _ []float64) (metrics.AlgorithmResult, error) {
		g := ToGonum(view, nil)
		n := view.NumNodes()
		dist := allDistances(g, n, workers)

		values := make([]float64, n)
		for u := 0; u < n; u++ {
			sum := 0.0
			for t := 0; t < n; t++ {
				if t == u || math.IsInf(dist[u][t], 1) || dist[u][t] == 0 {
					continue
				}
				sum += 1.0 / dist[u][t]
			}
			values[u] = sum
		}

		return metrics.AlgorithmResult{Values: values}, nil
	}
}

// allDistances computes the single-source shortest-path distance from every
// vertex using hop counts, fanning sources out across the given number of
// worker goroutines. Each worker writes only its own source rows, so no
// locking is needed.
func allDistances(g *simple.WeightedDirectedGraph, n, workers int) [][]float64 {
	dist := make([][]float64, n)
	if n == 0 {
		return dist
	}
	if workers > n {
		workers = n
	}

	sources := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range sources {
				shortest := path.DijkstraFrom(g.Node(int64(s)), g)
				row := make([]float64, n)
				for t := 0; t < n; t++ {
					row[t] = shortest.WeightTo(int64(t))
				}
				dist[s] = row
			}
		}()
	}
	for s := 0; s < n; s++ {
		sources <- s
	}
	close(sources)
	wg.Wait()

	return dist
}
