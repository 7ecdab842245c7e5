package algorithms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

const (
	spectralMaxIterations = 1000
	spectralTolerance     = 1e-9

	katzAlpha = 0.1
	katzBeta  = 1.0
)

// propagationMatrix builds the dense propagation operator M where
// M[to][from] accumulates the weight of edge from -> to, so M*x moves scores
// along in-edges. Undirected views get the symmetric closure. The weights
// slice is aligned with view.Edges(); missing entries default to 1.
func propagationMatrix(view *graph.View, weights []float64) *mat.Dense {
	n := view.NumNodes()
	m := mat.NewDense(n, n, nil)
	for k, e := range view.Edges() {
		w := 1.0
		if k < len(weights) {
			w = weights[k]
		}
		m.Set(e[1], e[0], m.At(e[1], e[0])+w)
		if !view.Directed() && e[0] != e[1] {
			m.Set(e[0], e[1], m.At(e[0], e[1])+w)
		}
	}
	return m
}

// eigenvectorFn computes eigenvector centrality by power iteration on the
// weighted propagation operator. A component whose operator annihilates the
// start vector (an edgeless vertex, or a sink-only structure) or that fails
// to converge is reported as a failure and stays missing.
func eigenvectorFn(view *graph.View, weights []float64) (metrics.AlgorithmResult, error) {
	n := view.NumNodes()
	m := propagationMatrix(view, weights)

	x := uniformVec(n)
	y := mat.NewVecDense(n, nil)
	for iter := 0; iter < spectralMaxIterations; iter++ {
		y.MulVec(m, x)
		norm := mat.Norm(y, 2)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return metrics.AlgorithmResult{}, fmt.Errorf("eigenvector iteration collapsed at iteration %d", iter)
		}
		y.ScaleVec(1/norm, y)
		if maxDelta(x, y) < spectralTolerance {
			return metrics.AlgorithmResult{Values: vecValues(y)}, nil
		}
		x.CopyVec(y)
	}
	return metrics.AlgorithmResult{}, fmt.Errorf("eigenvector failed to converge in %d iterations", spectralMaxIterations)
}

// katzFn computes Katz centrality by fixed-point iteration
// x <- alpha*M*x + beta. Divergence (alpha above the spectral radius bound)
// is detected and reported as a failure.
func katzFn(view *graph.View, weights []float64) (metrics.AlgorithmResult, error) {
	n := view.NumNodes()
	m := propagationMatrix(view, weights)

	beta := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		beta.SetVec(i, katzBeta)
	}

	x := uniformVec(n)
	y := mat.NewVecDense(n, nil)
	for iter := 0; iter < spectralMaxIterations; iter++ {
		y.MulVec(m, x)
		y.ScaleVec(katzAlpha, y)
		y.AddVec(y, beta)

		norm := mat.Norm(y, 2)
		if math.IsNaN(norm) || math.IsInf(norm, 0) || norm > 1e12 {
			return metrics.AlgorithmResult{}, fmt.Errorf("katz iteration diverged at iteration %d", iter)
		}
		if maxDelta(x, y) < spectralTolerance {
			return metrics.AlgorithmResult{Values: vecValues(y)}, nil
		}
		x.CopyVec(y)
	}
	return metrics.AlgorithmResult{}, fmt.Errorf("katz failed to converge in %d iterations", spectralMaxIterations)
}

// eigentrustFn computes EigenTrust scores: the stationary distribution of the
// out-weight-normalized trust matrix, found by power iteration with L1
// renormalization. Components with no trust mass (no edges) fail and stay
// missing.
func eigentrustFn(view *graph.View, weights []float64) (metrics.AlgorithmResult, error) {
	n := view.NumNodes()

	outSum := make([]float64, n)
	for k, e := range view.Edges() {
		w := 1.0
		if k < len(weights) {
			w = weights[k]
		}
		outSum[e[0]] += w
		if !view.Directed() && e[0] != e[1] {
			outSum[e[1]] += w
		}
	}

	// M[to][from] = w(from->to) / outSum(from): a column-stochastic trust
	// operator except for dangling vertices, whose column stays zero.
	m := mat.NewDense(n, n, nil)
	for k, e := range view.Edges() {
		w := 1.0
		if k < len(weights) {
			w = weights[k]
		}
		if outSum[e[0]] > 0 {
			m.Set(e[1], e[0], m.At(e[1], e[0])+w/outSum[e[0]])
		}
		if !view.Directed() && e[0] != e[1] && outSum[e[1]] > 0 {
			m.Set(e[0], e[1], m.At(e[0], e[1])+w/outSum[e[1]])
		}
	}

	x := uniformVec(n)
	y := mat.NewVecDense(n, nil)
	for iter := 0; iter < spectralMaxIterations; iter++ {
		y.MulVec(m, x)

		mass := 0.0
		for i := 0; i < n; i++ {
			mass += math.Abs(y.AtVec(i))
		}
		if mass == 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
			return metrics.AlgorithmResult{}, fmt.Errorf("eigentrust iteration collapsed at iteration %d", iter)
		}
		y.ScaleVec(1/mass, y)
		if maxDelta(x, y) < spectralTolerance {
			return metrics.AlgorithmResult{Values: vecValues(y)}, nil
		}
		x.CopyVec(y)
	}
	return metrics.AlgorithmResult{}, fmt.Errorf("eigentrust failed to converge in %d iterations", spectralMaxIterations)
}

// uniformVec returns the uniform start vector 1/n.
func uniformVec(n int) *mat.VecDense {
	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1.0/float64(n))
	}
	return x
}

// maxDelta returns the infinity-norm distance between two vectors.
func maxDelta(a, b *mat.VecDense) float64 {
	delta := 0.0
	for i := 0; i < a.Len(); i++ {
		d := math.Abs(a.AtVec(i) - b.AtVec(i))
		if d > delta {
			delta = d
		}
	}
	return delta
}

// vecValues copies a vector out into a plain slice.
func vecValues(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
