package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gilchrisn/network-metrics-service/pkg/algorithms"
	"github.com/gilchrisn/network-metrics-service/pkg/export"
	"github.com/gilchrisn/network-metrics-service/pkg/graph"
	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		graphPath   string
		outputDir   string
		prefix      string
		noNormalize bool
		threads     int
		directed    bool
		seed        int64
		logLevel    string
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "network-metrics",
		Short: "Compute per-vertex centrality metrics for a graph and save the feature table",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := metrics.NewConfig()
			if configPath != "" {
				if err := config.LoadFromFile(configPath); err != nil {
					return fmt.Errorf("failed to load config %s: %w", configPath, err)
				}
			}

			// CLI flags override file configuration
			config.Set("metrics.normalize", !noNormalize)
			config.Set("performance.num_workers", threads)
			config.Set("logging.level", logLevel)
			config.Set("output.dir", outputDir)
			config.Set("output.prefix", prefix)
			if cmd.Flags().Changed("seed") {
				config.Set("metrics.random_seed", seed)
			}

			logger := config.CreateLogger()

			g, err := graph.LoadGraph(graphPath, directed)
			if err != nil {
				logger.Error().Err(err).Str("graph", graphPath).Msg("failed to load graph")
				return err
			}
			if err := g.Validate(); err != nil {
				logger.Error().Err(err).Str("graph", graphPath).Msg("loaded graph is invalid")
				return err
			}

			runner := metrics.NewRunner(g, config)
			battery := algorithms.Default(algorithms.Options{Workers: config.NumWorkers()})
			table, report := runner.Run(battery)

			csvPath, bundlePath, err := export.WriteAll(table, config.OutputDir(), config.OutputPrefix())
			if err != nil {
				logger.Error().Err(err).Msg("failed to write output")
				return err
			}

			logger.Info().
				Str("run_id", report.RunID).
				Int("vertices", report.NumVertices).
				Int("components", report.NumComponents).
				Int("metrics", table.Len()).
				Int("failures", len(report.Failures)).
				Str("csv", csvPath).
				Str("bundle", bundlePath).
				Msg("saved metrics")
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "path to graph file (edge list, or .csv adjacency matrix)")
	cmd.Flags().StringVar(&outputDir, "out", ".", "output directory for metric files")
	cmd.Flags().StringVar(&prefix, "prefix", "network", "prefix for output files")
	cmd.Flags().BoolVar(&noNormalize, "no-normalize", false, "disable min-max normalization of metric columns")
	cmd.Flags().IntVar(&threads, "threads", 8, "worker hint passed to algorithms that parallelize internally")
	cmd.Flags().BoolVar(&directed, "directed", false, "treat the input graph as directed")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for ephemeral edge-weight generation (default: time-based)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional config file")
	cmd.MarkFlagRequired("graph")
	cmd.SilenceUsage = true

	return cmd
}
