// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// errors.go - sentinel errors for the distance package.

package distance

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is classified.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrOptionViolation is returned for invalid options or prune settings
	// (negative max distance, unknown method, non-positive cutoff or decay).
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)
