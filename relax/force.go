// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// force.go - the Pairwise Force Evaluator.
//
// Contract:
//   • For pair (a, b): v = pos[a] − pos[b]; with a cell, v is wrapped to the
//     minimum image and mapped to Cartesian space (v × cell).
//   • r = ‖v‖₂ must be finite (else ErrNonFinite) and strictly positive
//     (else *CoincidentNodesError).
//   • m = law(r, d); f = m·v/r; acc[a] −= f; acc[b] += f (equal and opposite).
//   • pos is never written.
//
// Complexity:
//   • O(P·dim) per call for P pairs; no allocations inside the pair loop.

package relax

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/distance"
)

// ForceLaw returns the signed force magnitude between two vertices at
// separation r whose graph distance is d. Positive values pull the pair together.
type ForceLaw func(r, d float64) float64

// Spring is the default law r − d: a linear spring whose rest length is the
// graph distance.
func Spring(r, d float64) float64 {
	return r - d
}

// evaluator carries the per-goroutine scratch vectors of the pair loop.
type evaluator struct {
	law  ForceLaw
	cell *mat.Dense

	disp, cart       []float64
	dispVec, cartVec *mat.VecDense
}

func newEvaluator(law ForceLaw, cell *mat.Dense, dim int) *evaluator {
	if law == nil {
		law = Spring
	}
	e := &evaluator{
		law:  law,
		cell: cell,
		disp: make([]float64, dim),
		cart: make([]float64, dim),
	}
	e.dispVec = mat.NewVecDense(dim, e.disp)
	e.cartVec = mat.NewVecDense(dim, e.cart)

	return e
}

// separation fills the scratch with the (wrapped, Cartesian) displacement
// pos[a] − pos[b] and returns it together with its norm.
func (e *evaluator) separation(pos *mat.Dense, a, b int) ([]float64, float64) {
	floats.SubTo(e.disp, pos.RawRowView(a), pos.RawRowView(b))
	if e.cell == nil {
		return e.disp, floats.Norm(e.disp, 2)
	}
	wrapMinimumImage(e.disp)
	e.cartVec.MulVec(e.cell.T(), e.dispVec)

	return e.cart, floats.Norm(e.cart, 2)
}

// accumulate adds the forces of every pair at distance d into acc and returns
// the bucket's stress Σ(r − d)².
func (e *evaluator) accumulate(acc, pos *mat.Dense, d int, pairs []distance.Pair) (float64, error) {
	target := float64(d)
	stress := 0.0
	for _, p := range pairs {
		v, r := e.separation(pos, p.I, p.J)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, fmt.Errorf("%w: separation of %d %v and %d %v is %v", ErrNonFinite,
				p.I, pos.RawRowView(p.I), p.J, pos.RawRowView(p.J), r)
		}
		if r == 0 {
			return 0, &CoincidentNodesError{
				A:    p.I,
				B:    p.J,
				PosA: append([]float64(nil), pos.RawRowView(p.I)...),
				PosB: append([]float64(nil), pos.RawRowView(p.J)...),
			}
		}
		s := e.law(r, target) / r
		floats.AddScaled(acc.RawRowView(p.I), -s, v)
		floats.AddScaled(acc.RawRowView(p.J), s, v)
		stress += (r - target) * (r - target)
	}

	return stress, nil
}

// Evaluate returns the force accumulator of one distance bucket: a matrix shaped
// like pos whose row i is the net (Cartesian) force on vertex i. Vertices not in
// pairs get zero rows. A nil law means Spring; a nil cell means open boundaries.
//
// Errors:
//   - ErrShapeMismatch: pair index out of range or cell not dim×dim.
//   - *CoincidentNodesError (matches ErrCoincidentNodes): zero separation.
//   - ErrNonFinite: a NaN or infinite separation.
func Evaluate(law ForceLaw, d int, pairs []distance.Pair, pos, cell *mat.Dense) (*mat.Dense, error) {
	if pos == nil {
		return nil, fmt.Errorf("Evaluate: nil positions: %w", ErrShapeMismatch)
	}
	n, dim := pos.Dims()
	if cell != nil {
		if err := checkCellShape(cell, dim); err != nil {
			return nil, fmt.Errorf("Evaluate: %w", err)
		}
	}
	for _, p := range pairs {
		if p.I < 0 || p.J < 0 || p.I >= n || p.J >= n {
			return nil, fmt.Errorf("Evaluate: pair %v outside %d rows: %w", p, n, ErrShapeMismatch)
		}
	}

	acc := mat.NewDense(n, dim, nil)
	if _, err := newEvaluator(law, cell, dim).accumulate(acc, pos, d, pairs); err != nil {
		return nil, fmt.Errorf("Evaluate(d=%d): %w", d, err)
	}

	return acc, nil
}
