// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// options.go - functional options for Classify.

package distance

import (
	"context"
	"fmt"
)

// Method selects the all-pairs routine used by Classify.
type Method int

const (
	// MethodBFS runs one breadth-first search per source vertex. O(V·(V+E)).
	MethodBFS Method = iota

	// MethodFloydWarshall runs a dense closure on a V×V matrix. O(V³) time, O(V²) space.
	MethodFloydWarshall
)

// String returns a readable method name for logs.
func (m Method) String() string {
	switch m {
	case MethodBFS:
		return "bfs"
	case MethodFloydWarshall:
		return "floyd-warshall"
	default:
		return "unknown"
	}
}

// Option configures Classify.
// Invalid values are recorded and surfaced as ErrOptionViolation by Classify.
type Option func(*Options)

// Options holds the resolved Classify settings.
type Options struct {
	// Ctx is checked between sources (BFS) or between pivots (Floyd–Warshall).
	Ctx context.Context

	// Method selects the all-pairs routine.
	Method Method

	// MaxDistance, if > 0, drops pairs farther than this many hops.
	MaxDistance int

	err error
}

// DefaultOptions returns background context, BFS and no distance limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Method: MethodBFS,
	}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMethod selects the all-pairs routine.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case MethodBFS, MethodFloydWarshall:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, int(m))
		}
	}
}

// WithMaxDistance keeps only pairs at most k hops apart.
//
//	k > 0: limit to k
//	k == 0: no limit
//	k < 0: ErrOptionViolation
func WithMaxDistance(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxDistance = k
	}
}
