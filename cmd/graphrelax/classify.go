package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphrelax/bfs"
	"github.com/katalvlaran/graphrelax/core"
	"github.com/katalvlaran/graphrelax/dfs"
	"github.com/katalvlaran/graphrelax/distance"
	"github.com/katalvlaran/graphrelax/scenario"
)

func newClassifyCmd() *cobra.Command {
	var (
		scenarioFile string
		solid        string
		method       string
		maxDistance  int
		from, to     string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the distance buckets of a graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *scenario.Scenario
			if scenarioFile != "" {
				loaded, err := scenario.Load(scenarioFile)
				if err != nil {
					return fmt.Errorf("failed to load scenario: %w", err)
				}
				s = loaded
			} else {
				def := scenario.Default()
				def.Graph.Solid = solid
				s = &def
			}

			g, err := s.BuildGraph()
			if err != nil {
				return err
			}

			m := distance.MethodBFS
			switch strings.ToLower(method) {
			case "bfs":
			case "floyd-warshall", "fw":
				m = distance.MethodFloydWarshall
			default:
				return fmt.Errorf("unknown method %q (want bfs or floyd-warshall)", method)
			}

			b, err := distance.Classify(g,
				distance.WithContext(cmd.Context()),
				distance.WithMethod(m),
				distance.WithMaxDistance(maxDistance))
			if err != nil {
				return err
			}

			comps, err := dfs.Components(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices=%d edges=%d components=%d pairs=%d\n",
				g.VertexCount(), g.EdgeCount(), len(comps), b.PairCount())
			err = b.Each(func(d int, pairs []distance.Pair) error {
				_, err := fmt.Fprintf(out, "d=%d pairs=%d\n", d, len(pairs))
				return err
			})
			if err != nil || from == "" {
				return err
			}
			if to != "" {
				return printPath(cmd, out, g, from, to)
			}
			return printLayers(cmd, out, g, from, maxDistance)
		},
	}

	cmd.Flags().StringVar(&scenarioFile, "scenario", "", "Path to a YAML scenario file")
	cmd.Flags().StringVar(&solid, "solid", "octahedron", "Platonic solid to classify when no scenario is given")
	cmd.Flags().StringVar(&method, "method", "bfs", "All-pairs method: bfs or floyd-warshall")
	cmd.Flags().IntVar(&maxDistance, "max-distance", 0, "Drop pairs farther apart than this many hops (0 = no limit)")
	cmd.Flags().StringVar(&from, "from", "", "Also print the hop layers around this vertex")
	cmd.Flags().StringVar(&to, "to", "", "With --from, print one shortest path to this vertex instead of the layers")

	return cmd
}

// errReached stops a path search once the target is dequeued.
var errReached = errors.New("target reached")

// printLayers prints one "hop=k vertices=a,b" line per BFS layer around from.
func printLayers(cmd *cobra.Command, out io.Writer, g *core.Graph, from string, maxDistance int) error {
	res, err := bfs.BFS(g, from, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDistance))
	if err != nil {
		return fmt.Errorf("layers from %q: %w", from, err)
	}
	for d, layer := range res.Layers {
		if _, err = fmt.Fprintf(out, "hop=%d vertices=%s\n", d, strings.Join(layer, ",")); err != nil {
			return err
		}
	}

	return nil
}

// printPath prints "path=a,b,c" for a shortest path from -> to. The search
// stops as soon as to is visited.
func printPath(cmd *cobra.Command, out io.Writer, g *core.Graph, from, to string) error {
	if !g.HasVertex(to) {
		return fmt.Errorf("path to %q: %w", to, bfs.ErrStartVertexNotFound)
	}
	res, err := bfs.BFS(g, from,
		bfs.WithContext(cmd.Context()),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == to {
				return errReached
			}
			return nil
		}))
	if err != nil && !errors.Is(err, errReached) {
		return fmt.Errorf("path from %q: %w", from, err)
	}
	path, err := res.PathTo(to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "path=%s\n", strings.Join(path, ","))

	return err
}
