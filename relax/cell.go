// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// cell.go - periodic cell handling (minimum image, fractional ↔ Cartesian).
//
// Conventions:
//   • Rows of the cell matrix are lattice vectors.
//   • Cartesian = fractional row-vector × cell, i.e. cellᵀ · v for column vectors.
//   • Minimum image wraps every fractional component into [-0.5, 0.5).

package relax

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// periodicCell holds a validated cell and its inverse.
type periodicCell struct {
	m   *mat.Dense
	inv *mat.Dense
}

// newPeriodicCell checks that cell is dim×dim and numerically invertible:
// a condition number above mat.ConditionTolerance counts as singular.
func newPeriodicCell(cell *mat.Dense, dim int) (*periodicCell, error) {
	if err := checkCellShape(cell, dim); err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(cell); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g",
				ErrSingularCell, float64(cond), mat.ConditionTolerance)
		}
		return nil, fmt.Errorf("%w: %v", ErrSingularCell, err)
	}

	return &periodicCell{m: cell, inv: &inv}, nil
}

// checkCellShape returns ErrShapeMismatch unless cell is dim×dim.
func checkCellShape(cell *mat.Dense, dim int) error {
	r, c := cell.Dims()
	if r != dim || c != dim {
		return fmt.Errorf("%w: cell is %dx%d, positions have %d columns", ErrShapeMismatch, r, c, dim)
	}

	return nil
}

// wrapMinimumImage maps each fractional component into [-0.5, 0.5) in place.
func wrapMinimumImage(v []float64) {
	for k := range v {
		v[k] -= math.Floor(v[k] + 0.5)
	}
}
