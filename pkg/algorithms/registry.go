package algorithms

import (
	"runtime"

	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

// Options carries execution hints passed down into individual algorithms.
// The runner never coordinates algorithm-internal parallelism; Workers is a
// hint honored by algorithms that iterate independent source vertices.
type Options struct {
	Workers int
}

// DefaultOptions returns execution defaults.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// Default returns the registered metric battery in its canonical order.
// Single-output algorithms contribute one column under their own name;
// hits contributes hits_authority and hits_hub.
func Default(opts Options) []metrics.Algorithm {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return []metrics.Algorithm{
		{Name: "pagerank", Fn: pagerankFn},
		{Name: "betweenness", Fn: betweennessFn},
		{Name: "closeness", Fn: closenessFn(opts.Workers)},
		{Name: "harmonic", Fn: harmonicFn(opts.Workers)},
		{Name: "eigenvector", NeedsWeights: true, Fn: eigenvectorFn},
		{Name: "katz", NeedsWeights: true, Fn: katzFn},
		{Name: "hits", Roles: []string{"authority", "hub"}, Fn: hitsFn},
		{Name: "eigentrust", NeedsWeights: true, Fn: eigentrustFn},
		{Name: "trust_transitivity", NeedsWeights: true, Fn: trustTransitivityFn},
	}
}
