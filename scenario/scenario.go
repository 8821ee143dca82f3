// Package scenario loads relaxation runs from YAML files.
//
// A scenario names a graph (a Platonic solid, a parametric family or an explicit
// edge list), a start configuration (seeded random or explicit rows), an
// optional periodic cell and the run parameters:
//
//	name: octahedron
//	graph:
//	  solid: octahedron
//	positions:
//	  seed: 42
//	  dim: 3
//	dt: 0.01
//	iterations: 1000
//	max_distance: 1
//
// Files are decoded with gopkg.in/yaml.v3 (unknown keys are rejected) and
// checked with go-playground/validator; every failure wraps ErrInvalidScenario.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/graphrelax/relax"
)

// ErrInvalidScenario is returned for unreadable, malformed or inconsistent scenarios.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is one relaxation run.
type Scenario struct {
	Name        string       `yaml:"name"`
	Graph       GraphSpec    `yaml:"graph"`
	Positions   PositionSpec `yaml:"positions"`
	Cell        [][]float64  `yaml:"cell,omitempty"`
	DT          float64      `yaml:"dt" validate:"gt=0"`
	Iterations  int          `yaml:"iterations" validate:"gte=0"`
	Workers     int          `yaml:"workers" validate:"gte=1"`
	MaxDistance int          `yaml:"max_distance" validate:"gte=0"`
	Prune       *PruneSpec   `yaml:"prune,omitempty"`
}

// GraphSpec selects exactly one graph source: Solid, Kind or Edges.
type GraphSpec struct {
	// Solid is a Platonic solid name (case-insensitive), e.g. "octahedron".
	Solid string `yaml:"solid,omitempty"`

	// Center adds a hub vertex joined to every vertex of Solid.
	Center bool `yaml:"center,omitempty"`

	// Kind is a parametric family sized by N (or Rows×Cols for grid).
	Kind string `yaml:"kind,omitempty" validate:"omitempty,oneof=cycle path complete grid"`
	N    int    `yaml:"n,omitempty" validate:"gte=0"`
	Rows int    `yaml:"rows,omitempty" validate:"gte=0"`
	Cols int    `yaml:"cols,omitempty" validate:"gte=0"`

	// Vertices fixes the row order of an edge-list graph and may add isolated vertices.
	Vertices []string `yaml:"vertices,omitempty" validate:"dive,required"`

	// Edges is an explicit undirected edge list.
	Edges [][2]string `yaml:"edges,omitempty" validate:"dive,dive,required"`
}

// PositionSpec is either explicit Rows or a seeded uniform [0,1) start of Dim columns.
type PositionSpec struct {
	Seed int64       `yaml:"seed"`
	Dim  int         `yaml:"dim" validate:"gte=1"`
	Rows [][]float64 `yaml:"rows,omitempty" validate:"dive,min=1"`
}

// PruneSpec mirrors distance.PruneConfig.
type PruneSpec struct {
	Cutoff int     `yaml:"cutoff" validate:"gt=0"`
	Decay  float64 `yaml:"decay" validate:"gt=0"`
	Seed   int64   `yaml:"seed"`
}

// Default returns a scenario carrying the engine defaults and a 3-D random start.
// Decoding a file into it overrides only the keys present in the file.
func Default() Scenario {
	return Scenario{
		Positions:  PositionSpec{Dim: 3},
		DT:         relax.DefaultStep,
		Iterations: relax.DefaultIterations,
		Workers:    1,
	}
}

var validate = validator.New()

// Validate checks field ranges and cross-field consistency.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return invalidf("%s", describe(err))
	}

	sources := 0
	if s.Graph.Solid != "" {
		sources++
	}
	if s.Graph.Kind != "" {
		sources++
	}
	if len(s.Graph.Edges) > 0 || len(s.Graph.Vertices) > 0 {
		sources++
	}
	if sources != 1 {
		return invalidf("graph: exactly one of solid, kind or edges/vertices is required (got %d)", sources)
	}

	if len(s.Positions.Rows) > 0 {
		dim := len(s.Positions.Rows[0])
		for i, row := range s.Positions.Rows {
			if len(row) != dim {
				return invalidf("positions: row %d has %d columns, row 0 has %d", i, len(row), dim)
			}
		}
	}
	for i, row := range s.Cell {
		if len(row) != len(s.Cell) {
			return invalidf("cell: row %d has %d columns, want %d (square)", i, len(row), len(s.Cell))
		}
	}

	return nil
}

// invalidf wraps ErrInvalidScenario with a formatted reason.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

// describe flattens validator errors into "Field must be tag param" clauses.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s must be %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += " " + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "; ")
}
