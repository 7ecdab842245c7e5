package metrics

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/network-metrics-service/pkg/graph"
)

// ComponentFailure records one failed (metric, component) invocation. Failures
// are isolated: the component's vertices stay NaN for that metric and nothing
// else is affected.
type ComponentFailure struct {
	Metric    string `json:"metric"`
	Component int    `json:"component"`
	Reason    string `json:"reason"`
}

// Report summarizes a computation run.
type Report struct {
	RunID         string             `json:"run_id"`
	NumVertices   int                `json:"num_vertices"`
	NumEdges      int                `json:"num_edges"`
	NumComponents int                `json:"num_components"`
	Failures      []ComponentFailure `json:"failures"`
	RuntimeMS     int64              `json:"runtime_ms"`
}

// Runner computes a battery of metric algorithms over a graph by running each
// algorithm independently on every connected component and splicing the
// partial results into full-graph columns. The orchestration is sequential;
// algorithms may parallelize internally.
type Runner struct {
	graph  *graph.Graph
	config *Config
	logger zerolog.Logger
	rng    *rand.Rand
}

// NewRunner creates a runner for the given graph. The edge-weight randomness
// source is seeded from metrics.random_seed so runs can be made reproducible
// through configuration.
func NewRunner(g *graph.Graph, config *Config) *Runner {
	return &Runner{
		graph:  g,
		config: config,
		logger: config.CreateLogger(),
		rng:    rand.New(rand.NewSource(config.RandomSeed())),
	}
}

// WithRand replaces the runner's randomness source. Used by tests that need
// deterministic edge weights.
func (r *Runner) WithRand(rng *rand.Rand) *Runner {
	r.rng = rng
	return r
}

// Run executes every algorithm on every component and returns the assembled
// table together with a report of all per-(metric, component) failures. The
// run always completes with a structurally valid table: every algorithm
// contributes its full set of columns at the graph's vertex count, even when
// every entry in a column is NaN.
func (r *Runner) Run(algorithms []Algorithm) (*Table, *Report) {
	start := time.Now()

	labels, numComponents := graph.Components(r.graph)
	table := NewTable(r.graph.NumNodes)
	report := &Report{
		RunID:         uuid.NewString(),
		NumVertices:   r.graph.NumNodes,
		NumEdges:      r.graph.NumEdges(),
		NumComponents: numComponents,
	}

	logger := r.logger.With().Str("run_id", report.RunID).Logger()
	logger.Info().
		Int("vertices", report.NumVertices).
		Int("edges", report.NumEdges).
		Int("components", numComponents).
		Int("algorithms", len(algorithms)).
		Msg("starting metric computation")

	for _, alg := range algorithms {
		columns := r.runAlgorithm(alg, labels, numComponents, report, logger)
		for i, name := range alg.ColumnNames() {
			values := Sanitize(columns[i], r.graph.NumNodes)
			if r.config.Normalize() {
				values = MinMaxNormalize(values)
			}
			table.Set(name, values)
		}
	}

	report.RuntimeMS = time.Since(start).Milliseconds()
	logger.Info().
		Int("metrics", table.Len()).
		Int("failures", len(report.Failures)).
		Int64("runtime_ms", report.RuntimeMS).
		Msg("metric computation complete")

	return table, report
}

// runAlgorithm computes one algorithm across all components, returning one
// full-length raw column per output role. Vertices of failed or skipped
// components stay NaN.
func (r *Runner) runAlgorithm(alg Algorithm, labels []int, numComponents int, report *Report, logger zerolog.Logger) [][]float64 {
	numColumns := len(alg.ColumnNames())
	columns := make([][]float64, numColumns)
	for i := range columns {
		columns[i] = NaNArray(r.graph.NumNodes)
	}

	for component := 0; component < numComponents; component++ {
		view := graph.NewComponentView(r.graph, labels, component)
		if view.NumNodes() == 0 {
			continue
		}

		// Fresh ephemeral weights per invocation: the assignment exercises
		// weighted algorithm paths structurally and carries no meaning, so it
		// is never reused across (metric, component) pairs.
		var weights []float64
		if alg.NeedsWeights {
			weights = r.randomWeights(view.NumEdges())
		}

		result, err := alg.Fn(view, weights)
		if err != nil {
			r.recordFailure(report, logger, alg.Name, component, err)
			continue
		}

		switch {
		case len(result.Roles) > 0:
			if len(result.Roles) != numColumns {
				r.recordFailure(report, logger, alg.Name, component,
					fmt.Errorf("got %d role arrays, declared %d roles", len(result.Roles), numColumns))
				continue
			}
			for i, values := range result.Roles {
				splice(columns[i], view, values)
			}
		case result.Values != nil:
			if numColumns != 1 {
				r.recordFailure(report, logger, alg.Name, component,
					fmt.Errorf("single array returned for multi-role algorithm"))
				continue
			}
			splice(columns[0], view, result.Values)
		default:
			r.recordFailure(report, logger, alg.Name, component, fmt.Errorf("empty result"))
		}
	}

	return columns
}

func (r *Runner) recordFailure(report *Report, logger zerolog.Logger, metric string, component int, err error) {
	report.Failures = append(report.Failures, ComponentFailure{
		Metric:    metric,
		Component: component,
		Reason:    err.Error(),
	})
	logger.Warn().
		Str("metric", metric).
		Int("component", component).
		Err(err).
		Msg("metric failed on component")
}

// randomWeights draws one uniform [0, 1) weight per edge.
func (r *Runner) randomWeights(numEdges int) []float64 {
	weights := make([]float64, numEdges)
	for i := range weights {
		weights[i] = r.rng.Float64()
	}
	return weights
}

// splice writes a view-local result array into a full-graph column by
// positional correspondence with the view's vertex iteration order. This
// assumes the algorithm's output order matches the view's vertex enumeration
// order, which is part of the AlgorithmFunc contract. A short result leaves
// the tail of the component NaN.
func splice(column []float64, view *graph.View, values []float64) {
	for local, global := range view.Vertices {
		if local >= len(values) {
			break
		}
		column[global] = values[local]
	}
}
