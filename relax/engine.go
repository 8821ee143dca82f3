// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// engine.go - Relax: fixed-count explicit-Euler relaxation.
//
// Contract:
//   • Classification runs once; iterations are strictly sequential.
//   • Each iteration: per-bucket accumulators → summed in ascending distance
//     order → (× cell⁻¹ when periodic) → pos += dt·acc.
//   • Exactly cfg.Iterations steps; no convergence test.
//   • The caller's positions matrix is never written; the result is a new matrix.
//
// Determinism:
//   • Buckets are summed in a fixed order whatever the worker count, so
//     WithParallel(k) reproduces the sequential result bit for bit.

package relax

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/core"
	"github.com/katalvlaran/graphrelax/dfs"
	"github.com/katalvlaran/graphrelax/distance"
)

const opRelax = "Relax"

// bucketWork is the per-bucket state reused across iterations.
type bucketWork struct {
	d      int
	pairs  []distance.Pair
	acc    *mat.Dense
	eval   *evaluator
	stress float64
}

// engine is the resolved state of one Relax call.
type engine struct {
	cfg   Config
	cell  *periodicCell
	work  []*bucketWork
	pos   *mat.Dense
	total *mat.Dense
	frac  *mat.Dense // total × cell⁻¹, periodic runs only
	pairs int
	comps int
}

// Relax moves the vertices of g so that their separations approach their hop
// distances, and returns the relaxed positions as a new matrix.
//
// positions has one row per vertex (row i = vertex with core index i) and
// dim ≥ 1 columns. With WithCell the rows are fractional coordinates and stay
// fractional in the result.
//
// Errors:
//   - ErrGraphNil, ErrInvalidConfig, ErrShapeMismatch, ErrSingularCell.
//   - *CoincidentNodesError (matches ErrCoincidentNodes).
//   - ErrNonFinite for NaN/Inf input rows or a diverging run.
//   - ctx.Err() when the context is cancelled between iterations.
//   - Wrapped distance errors from classification or pruning.
//
// Complexity:
//   - Classification O(V·(V+E)) once, then O(Iterations · P · dim) for P pairs.
//
// AI-Hints:
//   - Reuse one classification for many starts with WithBuckets.
//   - WithMaxDistance(1) keeps only bonded pairs (rigid frameworks relax to unit bonds).
func Relax(g *core.Graph, positions *mat.Dense, opts ...Option) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opRelax, err)
	}

	e, err := newEngine(g, positions, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRelax, err)
	}

	start := time.Now()
	for it := 1; it <= cfg.Iterations; it++ {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opRelax, it, err)
		}
		if err = e.step(it); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opRelax, it, err)
		}
	}

	rows, _ := e.pos.Dims()
	run := RunStats{
		Vertices:   rows,
		Buckets:    len(e.work),
		Pairs:      e.pairs,
		Components: e.comps,
		Iterations: cfg.Iterations,
		Elapsed:    time.Since(start),
	}
	cfg.Observer.ObserveRun(run)
	cfg.Logger.Info("relaxation finished",
		zap.Int("vertices", run.Vertices),
		zap.Int("buckets", run.Buckets),
		zap.Int("pairs", run.Pairs),
		zap.Int("components", run.Components),
		zap.Int("iterations", run.Iterations),
		zap.Int("workers", cfg.Workers),
		zap.Bool("periodic", e.cell != nil),
		zap.Duration("elapsed", run.Elapsed),
	)

	return e.pos, nil
}

// newEngine validates shapes, classifies g and allocates all scratch space.
func newEngine(g *core.Graph, positions *mat.Dense, cfg Config) (*engine, error) {
	if positions == nil {
		return nil, fmt.Errorf("nil positions: %w", ErrShapeMismatch)
	}
	n := g.VertexCount()
	rows, dim := positions.Dims()
	if n == 0 || rows != n {
		return nil, fmt.Errorf("%w: %d position rows for %d vertices", ErrShapeMismatch, rows, n)
	}

	for i := 0; i < rows; i++ {
		if row := positions.RawRowView(i); !allFinite(row) {
			return nil, fmt.Errorf("%w: row %d is %v", ErrNonFinite, i, row)
		}
	}

	e := &engine{cfg: cfg, pos: mat.DenseCopyOf(positions)}
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	e.comps = len(comps)
	if cfg.Cell != nil {
		if e.cell, err = newPeriodicCell(cfg.Cell, dim); err != nil {
			return nil, err
		}
		e.frac = mat.NewDense(n, dim, nil)
	}

	buckets := cfg.Buckets
	if buckets == nil {
		buckets, err = distance.Classify(g,
			distance.WithContext(cfg.Ctx), distance.WithMaxDistance(cfg.MaxDistance))
		if err != nil {
			return nil, err
		}
	}
	if cfg.Prune != nil {
		if buckets, err = distance.Prune(buckets, *cfg.Prune); err != nil {
			return nil, err
		}
	}

	var cellM *mat.Dense
	if e.cell != nil {
		cellM = e.cell.m
	}
	err = buckets.Each(func(d int, pairs []distance.Pair) error {
		if cfg.MaxDistance > 0 && d > cfg.MaxDistance {
			return nil
		}
		for _, p := range pairs {
			if p.I < 0 || p.J >= n || p.I >= n || p.J < 0 {
				return fmt.Errorf("%w: pair %v at distance %d outside %d rows", ErrShapeMismatch, p, d, n)
			}
		}
		e.work = append(e.work, &bucketWork{
			d:     d,
			pairs: pairs,
			acc:   mat.NewDense(n, dim, nil),
			eval:  newEvaluator(cfg.Law, cellM, dim),
		})
		e.pairs += len(pairs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.total = mat.NewDense(n, dim, nil)

	return e, nil
}

// step performs one Euler update of e.pos.
func (e *engine) step(it int) error {
	if err := e.evaluateBuckets(); err != nil {
		return err
	}

	e.total.Zero()
	stress := 0.0
	for _, w := range e.work {
		e.total.Add(e.total, w.acc)
		stress += w.stress
	}
	maxForce := maxRowNorm(e.total)

	delta := e.total
	if e.cell != nil {
		e.frac.Mul(e.total, e.cell.inv)
		delta = e.frac
	}
	floats.AddScaled(e.pos.RawMatrix().Data, e.cfg.Step, delta.RawMatrix().Data)

	stats := IterationStats{Iteration: it, MaxForce: maxForce, Stress: stress}
	e.cfg.Observer.ObserveIteration(stats)
	if ce := e.cfg.Logger.Check(zap.DebugLevel, "iteration"); ce != nil {
		ce.Write(
			zap.Int("iteration", it),
			zap.Float64("max_force", maxForce),
			zap.Float64("stress", stress),
		)
	}

	return nil
}

// evaluateBuckets refills every bucket accumulator from the current positions,
// sequentially or on an errgroup bounded by cfg.Workers.
func (e *engine) evaluateBuckets() error {
	run := func(w *bucketWork) error {
		w.acc.Zero()
		s, err := w.eval.accumulate(w.acc, e.pos, w.d, w.pairs)
		if err != nil {
			return fmt.Errorf("distance %d: %w", w.d, err)
		}
		w.stress = s
		return nil
	}

	if e.cfg.Workers <= 1 || len(e.work) < 2 {
		for _, w := range e.work {
			if err := run(w); err != nil {
				return err
			}
		}
		return nil
	}

	var grp errgroup.Group
	grp.SetLimit(e.cfg.Workers)
	for _, w := range e.work {
		w := w
		grp.Go(func() error { return run(w) })
	}

	return grp.Wait()
}

// maxRowNorm returns the largest Euclidean row norm of m.
func maxRowNorm(m *mat.Dense) float64 {
	rows, _ := m.Dims()
	best := 0.0
	for i := 0; i < rows; i++ {
		best = math.Max(best, floats.Norm(m.RawRowView(i), 2))
	}

	return best
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
