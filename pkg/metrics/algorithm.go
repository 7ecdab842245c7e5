package metrics

import (
	"github.com/gilchrisn/network-metrics-service/pkg/graph"
)

// AlgorithmResult is the output of a single algorithm invocation on one
// component view. Exactly one of the two fields is populated:
//
//   - Values: a single per-vertex array in the view's local index order.
//   - Roles: one per-vertex array per declared role, positionally matched to
//     the Algorithm's Roles list (e.g. HITS produces authority then hub).
//
// Failure is expressed through the error return of AlgorithmFunc, never
// through a partially filled result.
type AlgorithmResult struct {
	Values []float64
	Roles  [][]float64
}

// AlgorithmFunc computes a metric over one component view. The weights slice
// is nil unless the algorithm declared NeedsWeights, in which case it holds
// one value per view edge, aligned with view.Edges() order. Result arrays are
// indexed by the view's local vertex order; mapping local positions back to
// global vertex ids is the runner's job.
type AlgorithmFunc func(view *graph.View, weights []float64) (AlgorithmResult, error)

// Algorithm describes a registered metric algorithm. The mapping from result
// position to role name is declared here per algorithm, never inferred from
// the result shape at runtime.
type Algorithm struct {
	Name         string   // base metric name, also the column name for single-output algorithms
	Roles        []string // role names for multi-output algorithms, positional; empty for single-output
	NeedsWeights bool     // true if the algorithm consumes a per-edge weight assignment
	Fn           AlgorithmFunc
}

// ColumnNames returns the output column names this algorithm produces:
// the bare name for single-output algorithms, name_role per declared role
// otherwise.
func (a Algorithm) ColumnNames() []string {
	if len(a.Roles) == 0 {
		return []string{a.Name}
	}
	names := make([]string, len(a.Roles))
	for i, role := range a.Roles {
		names[i] = a.Name + "_" + role
	}
	return names
}
