// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// report.go - bond-length report and start configurations.

package relax

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/core"
)

// EdgeLength is the Cartesian length of one graph edge.
type EdgeLength struct {
	From, To string
	Length   float64
}

// Separation returns the Cartesian distance between rows a and b of pos,
// using the minimum image when cell is non-nil. cell must be dim×dim.
func Separation(pos, cell *mat.Dense, a, b int) float64 {
	_, dim := pos.Dims()
	_, r := newEvaluator(nil, cell, dim).separation(pos, a, b)

	return r
}

// EdgeLengths returns one EdgeLength per edge of g, in edge insertion order.
// Self-loops are skipped. With a cell, lengths use the minimum image.
//
// Errors:
//   - ErrGraphNil; ErrShapeMismatch if pos rows ≠ vertex count or cell is not dim×dim.
func EdgeLengths(g *core.Graph, pos, cell *mat.Dense) ([]EdgeLength, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if pos == nil {
		return nil, fmt.Errorf("EdgeLengths: nil positions: %w", ErrShapeMismatch)
	}
	rows, dim := pos.Dims()
	if rows != g.VertexCount() {
		return nil, fmt.Errorf("EdgeLengths: %w: %d rows for %d vertices", ErrShapeMismatch, rows, g.VertexCount())
	}
	if cell != nil {
		if err := checkCellShape(cell, dim); err != nil {
			return nil, fmt.Errorf("EdgeLengths: %w", err)
		}
	}

	ev := newEvaluator(nil, cell, dim)
	edges := g.Edges()
	out := make([]EdgeLength, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		a, err := g.VertexIndex(e.From)
		if err != nil {
			return nil, fmt.Errorf("EdgeLengths: %w", err)
		}
		b, err := g.VertexIndex(e.To)
		if err != nil {
			return nil, fmt.Errorf("EdgeLengths: %w", err)
		}
		_, r := ev.separation(pos, a, b)
		out = append(out, EdgeLength{From: e.From, To: e.To, Length: r})
	}

	return out, nil
}

// RandomPositions returns an n×dim matrix of uniform [0, 1) coordinates drawn
// from a source seeded with seed. It panics if n or dim is not positive,
// following gonum's matrix constructors.
func RandomPositions(n, dim int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*dim)
	for i := range data {
		data[i] = rng.Float64()
	}

	return mat.NewDense(n, dim, data)
}
