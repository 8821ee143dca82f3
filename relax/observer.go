// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// observer.go - iteration hooks for metrics and tracing.

package relax

import "time"

// IterationStats summarises one Euler step.
type IterationStats struct {
	// Iteration is 1-based.
	Iteration int

	// MaxForce is the largest per-vertex Cartesian force norm before the step.
	MaxForce float64

	// Stress is Σ(r − d)² over all interacting pairs before the step.
	Stress float64
}

// RunStats summarises a completed Relax call.
type RunStats struct {
	Vertices   int
	Buckets    int
	Pairs      int
	// Components counts connected components; pieces never act on each other.
	Components int
	Iterations int
	Elapsed    time.Duration
}

// Observer receives progress from Relax. Calls are made synchronously from the
// goroutine running Relax, in iteration order.
type Observer interface {
	ObserveIteration(IterationStats)
	ObserveRun(RunStats)
}

// nopObserver is the default Observer.
type nopObserver struct{}

func (nopObserver) ObserveIteration(IterationStats) {}
func (nopObserver) ObserveRun(RunStats)             {}
