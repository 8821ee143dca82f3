package scenario

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/builder"
	"github.com/katalvlaran/graphrelax/core"
	"github.com/katalvlaran/graphrelax/distance"
	"github.com/katalvlaran/graphrelax/relax"
)

// Result is the outcome of Run.
type Result struct {
	Graph     *core.Graph
	Positions *mat.Dense
	Lengths   []relax.EdgeLength
}

// BuildGraph constructs the graph described by s.Graph.
func (s *Scenario) BuildGraph() (*core.Graph, error) {
	gs := s.Graph
	var (
		cons  []builder.Constructor
		gopts []core.GraphOption
	)
	switch {
	case gs.Solid != "":
		name, err := builder.ParsePlatonicName(gs.Solid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
		cons = append(cons, builder.PlatonicSolid(name, gs.Center))
	case gs.Kind != "":
		switch strings.ToLower(gs.Kind) {
		case "cycle":
			cons = append(cons, builder.Cycle(gs.N))
		case "path":
			cons = append(cons, builder.Path(gs.N))
		case "complete":
			cons = append(cons, builder.Complete(gs.N))
		case "grid":
			cons = append(cons, builder.Grid(gs.Rows, gs.Cols))
		default:
			return nil, invalidf("graph: unknown kind %q", gs.Kind)
		}
	default:
		// Hand-written lists may repeat a bond or name a loop; both collapse
		// to simple connectivity when distances are classified.
		gopts = []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
		cons = append(cons, builder.Vertices(gs.Vertices...), builder.EdgeList(gs.Edges))
	}

	g, err := builder.BuildGraph(gopts, nil, cons...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return g, nil
}

// InitialPositions returns the explicit rows, or n seeded random rows of
// Positions.Dim columns.
func (s *Scenario) InitialPositions(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, invalidf("positions: graph has no vertices")
	}
	rows := s.Positions.Rows
	if len(rows) == 0 {
		return relax.RandomPositions(n, s.Positions.Dim, s.Positions.Seed), nil
	}
	if len(rows) != n {
		return nil, invalidf("positions: %d rows for %d vertices", len(rows), n)
	}
	dim := len(rows[0])
	data := make([]float64, 0, n*dim)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(n, dim, data), nil
}

// CellMatrix returns the periodic cell, or nil when none is configured.
func (s *Scenario) CellMatrix() *mat.Dense {
	if len(s.Cell) == 0 {
		return nil
	}
	dim := len(s.Cell)
	data := make([]float64, 0, dim*dim)
	for _, row := range s.Cell {
		data = append(data, row...)
	}

	return mat.NewDense(dim, dim, data)
}

// Options translates the run parameters into relax options.
func (s *Scenario) Options() []relax.Option {
	opts := []relax.Option{
		relax.WithStep(s.DT),
		relax.WithIterations(s.Iterations),
		relax.WithParallel(s.Workers),
		relax.WithMaxDistance(s.MaxDistance),
	}
	if cell := s.CellMatrix(); cell != nil {
		opts = append(opts, relax.WithCell(cell))
	}
	if s.Prune != nil {
		opts = append(opts, relax.WithPrune(distance.PruneConfig{
			Cutoff: s.Prune.Cutoff,
			Decay:  s.Prune.Decay,
			Seed:   s.Prune.Seed,
		}))
	}

	return opts
}

// Run builds the graph and start configuration, relaxes them and reports the
// final edge lengths. extra options are applied after the scenario's own.
func Run(ctx context.Context, s *Scenario, extra ...relax.Option) (*Result, error) {
	g, err := s.BuildGraph()
	if err != nil {
		return nil, err
	}
	start, err := s.InitialPositions(g.VertexCount())
	if err != nil {
		return nil, err
	}

	opts := append(s.Options(), relax.WithContext(ctx))
	opts = append(opts, extra...)
	pos, err := relax.Relax(g, start, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	lengths, err := relax.EdgeLengths(g, pos, s.CellMatrix())
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return &Result{Graph: g, Positions: pos, Lengths: lengths}, nil
}
