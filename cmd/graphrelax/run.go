package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphrelax/metrics"
	"github.com/katalvlaran/graphrelax/relax"
	"github.com/katalvlaran/graphrelax/scenario"
)

type runFlags struct {
	scenarioFile string
	solid        string
	center       bool
	seed         int64
	dim          int
	iterations   int
	dt           float64
	workers      int
	maxDistance  int
	logLevel     string
	metrics      bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Relax a scenario (or a Platonic solid) and print edge lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(f.logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			s, err := resolveScenario(cmd, f)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector("")
			res, err := scenario.Run(cmd.Context(), s,
				relax.WithLogger(logger.With(zap.String("scenario", s.Name))),
				relax.WithObserver(collector),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, el := range res.Lengths {
				fmt.Fprintf(out, "%s %s %.6f\n", el.From, el.To, el.Length)
			}
			if f.metrics {
				return collector.WriteText(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&f.scenarioFile, "scenario", "", "Path to a YAML scenario file")
	cmd.Flags().StringVar(&f.solid, "solid", "octahedron", "Platonic solid to relax when no scenario is given")
	cmd.Flags().BoolVar(&f.center, "center", false, "Add a hub vertex joined to every vertex of the solid")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed of the random unit-cube start")
	cmd.Flags().IntVar(&f.dim, "dim", 3, "Dimension of the random start")
	cmd.Flags().IntVar(&f.iterations, "iterations", 1000, "Number of Euler steps")
	cmd.Flags().Float64Var(&f.dt, "dt", relax.DefaultStep, "Euler time step")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Concurrent bucket evaluations per step")
	cmd.Flags().IntVar(&f.maxDistance, "max-distance", 0, "Ignore pairs farther apart than this many hops (0 = all pairs)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "Print Prometheus metrics after the lengths")

	return cmd
}

// resolveScenario loads --scenario or synthesises one from --solid, then
// applies every explicitly set run flag on top.
func resolveScenario(cmd *cobra.Command, f runFlags) (*scenario.Scenario, error) {
	var s *scenario.Scenario
	if f.scenarioFile != "" {
		loaded, err := scenario.Load(f.scenarioFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		s = loaded
	} else {
		def := scenario.Default()
		def.Name = f.solid
		def.Graph.Solid = f.solid
		def.Graph.Center = f.center
		def.Iterations = f.iterations
		s = &def
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || f.scenarioFile == "" {
		s.Positions.Seed = f.seed
	}
	if flags.Changed("dim") || f.scenarioFile == "" {
		s.Positions.Dim = f.dim
	}
	if flags.Changed("iterations") {
		s.Iterations = f.iterations
	}
	if flags.Changed("dt") {
		s.DT = f.dt
	}
	if flags.Changed("workers") {
		s.Workers = f.workers
	}
	if flags.Changed("max-distance") {
		s.MaxDistance = f.maxDistance
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
