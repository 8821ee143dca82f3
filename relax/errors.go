// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// errors.go - sentinel errors and the coincident-pair diagnostic.

package relax

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is relaxed or reported on.
	ErrGraphNil = errors.New("relax: graph is nil")

	// ErrShapeMismatch is returned when positions, cell or buckets disagree on size.
	ErrShapeMismatch = errors.New("relax: shape mismatch")

	// ErrSingularCell is returned when the cell matrix cannot be inverted, or
	// when its condition number exceeds mat.ConditionTolerance (1e16) so the
	// inverse would be meaningless, e.g. diag(1e9, 1e-9).
	ErrSingularCell = errors.New("relax: cell matrix is singular")

	// ErrCoincidentNodes is returned when two interacting vertices share a position
	// (after minimum-image wrapping). Use errors.As with *CoincidentNodesError for details.
	ErrCoincidentNodes = errors.New("relax: coincident nodes")

	// ErrNonFinite is returned when a position or a separation is NaN or ±Inf,
	// either in the input or because a run diverged (step too large).
	ErrNonFinite = errors.New("relax: non-finite position")

	// ErrInvalidConfig is returned when the resolved Config fails validation.
	ErrInvalidConfig = errors.New("relax: invalid configuration")
)

// CoincidentNodesError identifies the offending pair of a degenerate configuration.
// PosA and PosB are copies of the stored (fractional, when a cell is set) rows.
type CoincidentNodesError struct {
	A, B       int
	PosA, PosB []float64
}

// Error implements error.
func (e *CoincidentNodesError) Error() string {
	return fmt.Sprintf("relax: coincident nodes %d %v and %d %v", e.A, e.PosA, e.B, e.PosB)
}

// Unwrap lets errors.Is(err, ErrCoincidentNodes) match.
func (e *CoincidentNodesError) Unwrap() error {
	return ErrCoincidentNodes
}
