package relax_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/builder"
	"github.com/katalvlaran/graphrelax/core"
	"github.com/katalvlaran/graphrelax/distance"
	"github.com/katalvlaran/graphrelax/relax"
)

// mustBuild is BuildGraph with default options that fails the test on error.
func mustBuild(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// recorder is an Observer that keeps everything it sees.
type recorder struct {
	iters []relax.IterationStats
	runs  []relax.RunStats
}

func (r *recorder) ObserveIteration(s relax.IterationStats) { r.iters = append(r.iters, s) }
func (r *recorder) ObserveRun(s relax.RunStats)             { r.runs = append(r.runs, s) }

func TestRelax_UnitBondIsFixedPoint(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	pos := mat.NewDense(2, 3, []float64{
		0.2, 0.3, 0.4,
		1.2, 0.3, 0.4,
	})

	out, err := relax.Relax(g, pos, relax.WithIterations(500))
	require.NoError(t, err)
	assert.InDelta(t, 1, relax.Separation(out, nil, 0, 1), eps)
	assert.True(t, mat.EqualApprox(pos, out, eps))
}

func TestRelax_BondConvergesMonotonically(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	pos := mat.NewDense(2, 2, []float64{
		0, 0,
		3, 0,
	})

	prev := math.Inf(1)
	for _, iters := range []int{0, 1, 10, 50, 200, 1000} {
		out, err := relax.Relax(g, pos, relax.WithIterations(iters))
		require.NoError(t, err)
		r := relax.Separation(out, nil, 0, 1)
		dev := r - 1
		assert.Greater(t, dev, 0.0, "no overshoot at %d iterations", iters)
		assert.Less(t, dev, prev, "deviation shrinks at %d iterations", iters)
		prev = dev
	}
	assert.Less(t, prev, 1e-6)
}

func TestRelax_ZeroIterationsIsIdentity(t *testing.T) {
	g := mustBuild(t, builder.PlatonicSolid(builder.Cube, false))
	pos := relax.RandomPositions(8, 3, 5)

	out, err := relax.Relax(g, pos, relax.WithIterations(0))
	require.NoError(t, err)
	assert.True(t, mat.Equal(pos, out))
	assert.NotSame(t, pos, out)
}

func TestRelax_InputNotMutated(t *testing.T) {
	g := mustBuild(t, builder.Cycle(5))
	pos := relax.RandomPositions(5, 2, 9)
	orig := mat.DenseCopyOf(pos)

	out, err := relax.Relax(g, pos, relax.WithIterations(20))
	require.NoError(t, err)
	assert.True(t, mat.Equal(orig, pos))
	assert.False(t, mat.Equal(orig, out))
}

func TestRelax_OctahedronBondsOnly(t *testing.T) {
	g := mustBuild(t, builder.PlatonicSolid(builder.Octahedron, false))

	for seed := int64(1); seed <= 5; seed++ {
		out, err := relax.Relax(g, relax.RandomPositions(6, 3, seed),
			relax.WithIterations(1000), relax.WithStep(0.01), relax.WithMaxDistance(1))
		require.NoError(t, err)

		lengths, err := relax.EdgeLengths(g, out, nil)
		require.NoError(t, err)
		require.Len(t, lengths, 12)
		for _, el := range lengths {
			assert.InDelta(t, 1, el.Length, 0.05, "seed %d edge %s-%s", seed, el.From, el.To)
		}
	}
}

func TestRelax_OctahedronAllPairs(t *testing.T) {
	g := mustBuild(t, builder.PlatonicSolid(builder.Octahedron, false))
	// Perturbed regular octahedron: rows follow the antipodal pairs (0,1) (2,3) (4,5).
	pos := mat.NewDense(6, 3, []float64{
		0.9, 0.1, 0,
		-1, 0, 0.05,
		0, 1, 0.1,
		0.1, -0.8, 0,
		0, 0.2, 1.1,
		0, 0, -1,
	})

	out, err := relax.Relax(g, pos, relax.WithIterations(2000))
	require.NoError(t, err)

	// Edges want 1 and diagonals want 2; the least-squares compromise is a
	// regular octahedron with edge s = (12 + 6√2) / 18.
	s := (12 + 6*math.Sqrt2) / 18
	lengths, err := relax.EdgeLengths(g, out, nil)
	require.NoError(t, err)
	for _, el := range lengths {
		assert.InDelta(t, s, el.Length, 1e-4, "edge %s-%s", el.From, el.To)
	}
	for _, p := range [][2]int{{0, 1}, {2, 3}, {4, 5}} {
		assert.InDelta(t, s*math.Sqrt2, relax.Separation(out, nil, p[0], p[1]), 1e-4)
	}
}

func TestRelax_IsolatedVerticesStay(t *testing.T) {
	g := mustBuild(t, builder.Vertices("a", "b"))
	pos := mat.NewDense(2, 2, []float64{
		0, 0,
		0.3, 0.4,
	})
	out, err := relax.Relax(g, pos, relax.WithIterations(100))
	require.NoError(t, err)
	assert.True(t, mat.Equal(pos, out))

	// Even on top of each other: they never interact.
	same := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	rec := &recorder{}
	out, err = relax.Relax(g, same, relax.WithIterations(3), relax.WithObserver(rec))
	require.NoError(t, err)
	assert.True(t, mat.Equal(same, out))
	require.Len(t, rec.runs, 1)
	assert.Equal(t, 2, rec.runs[0].Components)
	assert.Zero(t, rec.runs[0].Pairs)
}

func TestRelax_Coincident(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	pos := mat.NewDense(3, 3, []float64{
		0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
		0.9, 0.1, 0.2,
	})

	_, err := relax.Relax(g, pos)
	require.ErrorIs(t, err, relax.ErrCoincidentNodes)
	var cerr *relax.CoincidentNodesError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 0, cerr.A)
	assert.Equal(t, 1, cerr.B)
}

func TestRelax_PeriodicImageAtRest(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	cell := scaledIdentity(3, 10)
	// Fractional 0.05 and 0.95: the minimum image is 0.1·10 = 1 apart.
	pos := mat.NewDense(2, 3, []float64{
		0.05, 0.5, 0.5,
		0.95, 0.5, 0.5,
	})

	out, err := relax.Relax(g, pos, relax.WithCell(cell), relax.WithIterations(200))
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(pos, out, 1e-9))
	assert.InDelta(t, 1, relax.Separation(out, cell, 0, 1), 1e-9)
}

func TestRelax_PeriodicStepIsFractional(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	cell := scaledIdentity(3, 4)
	pos := mat.NewDense(2, 3, []float64{
		0.05, 0.5, 0.5,
		0.95, 0.5, 0.5,
	})

	out, err := relax.Relax(g, pos, relax.WithCell(cell), relax.WithIterations(1))
	require.NoError(t, err)
	// Cartesian force 0.6 along x, mapped back through cell⁻¹ = I/4.
	assert.InDelta(t, 0.05+0.01*0.6/4, out.At(0, 0), 1e-12)
	assert.InDelta(t, 0.95-0.01*0.6/4, out.At(1, 0), 1e-12)
	assert.InDelta(t, 0.5, out.At(0, 1), 1e-12)
}

func TestRelax_TriclinicStepIsFractional(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	cell := mat.NewDense(2, 2, []float64{
		3, 0,
		1.5, 2,
	})
	pos := mat.NewDense(2, 2, []float64{
		0.1, 0.2,
		0.8, 0.4,
	})

	out, err := relax.Relax(g, pos, relax.WithCell(cell), relax.WithIterations(1))
	require.NoError(t, err)
	// Cartesian force k·(0.6, -0.4) times cell⁻¹ is k·(0.3, -0.2), the
	// wrapped fractional separation itself.
	r := math.Sqrt(0.52)
	k := 0.01 * (1 - r) / r
	assert.InDelta(t, 0.1+0.3*k, out.At(0, 0), 1e-12)
	assert.InDelta(t, 0.2-0.2*k, out.At(0, 1), 1e-12)
	assert.InDelta(t, 0.8-0.3*k, out.At(1, 0), 1e-12)
	assert.InDelta(t, 0.4+0.2*k, out.At(1, 1), 1e-12)
}

func TestRelax_CellErrors(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	pos := relax.RandomPositions(2, 3, 3)

	_, err := relax.Relax(g, pos, relax.WithCell(mat.NewDense(3, 3, nil)))
	assert.ErrorIs(t, err, relax.ErrSingularCell)

	rankTwo := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		1, 1, 0,
	})
	_, err = relax.Relax(g, pos, relax.WithCell(rankTwo))
	assert.ErrorIs(t, err, relax.ErrSingularCell)

	_, err = relax.Relax(g, pos, relax.WithCell(scaledIdentity(2, 1)))
	assert.ErrorIs(t, err, relax.ErrShapeMismatch)

	// Invertible in exact arithmetic, but beyond mat.ConditionTolerance.
	illConditioned := mat.NewDense(2, 2, []float64{
		1e9, 0,
		0, 1e-9,
	})
	_, err = relax.Relax(g, relax.RandomPositions(2, 2, 3), relax.WithCell(illConditioned))
	assert.ErrorIs(t, err, relax.ErrSingularCell)
	assert.Contains(t, err.Error(), "condition number")
}

func TestRelax_NonFinite(t *testing.T) {
	g := mustBuild(t, builder.Path(2))

	_, err := relax.Relax(g, mat.NewDense(2, 1, []float64{0, math.Inf(-1)}))
	assert.ErrorIs(t, err, relax.ErrNonFinite)
	assert.Contains(t, err.Error(), "row 1")

	// A step this large blows the bond up to ±Inf within a few iterations.
	_, err = relax.Relax(g, mat.NewDense(2, 1, []float64{0, 3}),
		relax.WithStep(1e300), relax.WithIterations(5))
	assert.ErrorIs(t, err, relax.ErrNonFinite)
	assert.NotErrorIs(t, err, relax.ErrCoincidentNodes)
}

func TestRelax_InputErrors(t *testing.T) {
	g := mustBuild(t, builder.Path(3))

	_, err := relax.Relax(nil, relax.RandomPositions(3, 2, 1))
	assert.ErrorIs(t, err, relax.ErrGraphNil)

	_, err = relax.Relax(g, nil)
	assert.ErrorIs(t, err, relax.ErrShapeMismatch)

	_, err = relax.Relax(g, relax.RandomPositions(4, 2, 1))
	assert.ErrorIs(t, err, relax.ErrShapeMismatch)

	_, err = relax.Relax(core.NewGraph(), relax.RandomPositions(1, 2, 1))
	assert.ErrorIs(t, err, relax.ErrShapeMismatch)

	wrong, err := distance.Classify(mustBuild(t, builder.Path(5)))
	require.NoError(t, err)
	_, err = relax.Relax(g, relax.RandomPositions(3, 2, 1), relax.WithBuckets(wrong))
	assert.ErrorIs(t, err, relax.ErrShapeMismatch)
}

func TestRelax_InvalidConfig(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	pos := relax.RandomPositions(2, 2, 1)

	for name, opt := range map[string]relax.Option{
		"zero step":     relax.WithStep(0),
		"negative step": relax.WithStep(-0.1),
		"NaN step":      relax.WithStep(math.NaN()),
		"negative iter": relax.WithIterations(-1),
		"no workers":    relax.WithParallel(0),
		"negative max":  relax.WithMaxDistance(-2),
	} {
		_, err := relax.Relax(g, pos, opt)
		assert.ErrorIs(t, err, relax.ErrInvalidConfig, name)
	}
}

func TestRelax_ParallelMatchesSequential(t *testing.T) {
	g := mustBuild(t, builder.Grid(4, 5))
	pos := relax.RandomPositions(20, 2, 77)

	seq, err := relax.Relax(g, pos, relax.WithIterations(50))
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 8} {
		par, err := relax.Relax(g, pos, relax.WithIterations(50), relax.WithParallel(workers))
		require.NoError(t, err)
		assert.True(t, mat.Equal(seq, par), "workers=%d", workers)
	}
}

func TestRelax_ReusedBucketsMatch(t *testing.T) {
	g := mustBuild(t, builder.PlatonicSolid(builder.Icosahedron, false))
	pos := relax.RandomPositions(12, 3, 4)

	b, err := distance.Classify(g)
	require.NoError(t, err)
	direct, err := relax.Relax(g, pos, relax.WithIterations(30))
	require.NoError(t, err)
	reused, err := relax.Relax(g, pos, relax.WithIterations(30), relax.WithBuckets(b))
	require.NoError(t, err)
	assert.True(t, mat.Equal(direct, reused))

	// A cutoff at the diameter keeps every pair.
	pruned, err := relax.Relax(g, pos, relax.WithIterations(30),
		relax.WithPrune(distance.PruneConfig{Cutoff: b.MaxDistance(), Decay: 2, Seed: 1}))
	require.NoError(t, err)
	assert.True(t, mat.Equal(direct, pruned))

	_, err = relax.Relax(g, pos, relax.WithPrune(distance.PruneConfig{}))
	assert.ErrorIs(t, err, distance.ErrOptionViolation)
}

func TestRelax_CustomLaw(t *testing.T) {
	g := mustBuild(t, builder.Complete(4))
	pos := relax.RandomPositions(4, 3, 8)

	out, err := relax.Relax(g, pos, relax.WithForceLaw(func(r, d float64) float64 { return 0 }))
	require.NoError(t, err)
	assert.True(t, mat.Equal(pos, out))
}

func TestRelax_ObserverAndLogger(t *testing.T) {
	g := mustBuild(t, builder.Path(2))
	pos := mat.NewDense(2, 1, []float64{0, 2})

	obsCore, logs := observer.New(zapcore.DebugLevel)
	rec := &recorder{}
	_, err := relax.Relax(g, pos,
		relax.WithIterations(5), relax.WithObserver(rec), relax.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)

	require.Len(t, rec.iters, 5)
	for i, s := range rec.iters {
		assert.Equal(t, i+1, s.Iteration)
		if i > 0 {
			assert.Less(t, s.Stress, rec.iters[i-1].Stress)
			assert.Less(t, s.MaxForce, rec.iters[i-1].MaxForce)
		}
	}
	// First step: r=2, d=1 ⇒ |f|=1 on each node, stress (2−1)² = 1.
	assert.InDelta(t, 1, rec.iters[0].MaxForce, eps)
	assert.InDelta(t, 1, rec.iters[0].Stress, eps)

	require.Len(t, rec.runs, 1)
	assert.Equal(t, relax.RunStats{
		Vertices: 2, Buckets: 1, Pairs: 1, Components: 1, Iterations: 5, Elapsed: rec.runs[0].Elapsed,
	}, rec.runs[0])

	assert.Equal(t, 5, logs.FilterMessage("iteration").Len())
	summary := logs.FilterMessage("relaxation finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["pairs"])
	assert.Equal(t, int64(1), summary[0].ContextMap()["components"])
}

func TestRelax_Cancelled(t *testing.T) {
	g := mustBuild(t, builder.Path(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := relax.Relax(g, relax.RandomPositions(4, 2, 1), relax.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	b, err := distance.Classify(g)
	require.NoError(t, err)
	_, err = relax.Relax(g, relax.RandomPositions(4, 2, 1), relax.WithContext(ctx), relax.WithBuckets(b))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, relax.DefaultConfig().Validate())

	cfg := relax.DefaultConfig()
	cfg.Step = 0
	cfg.Iterations = -3
	err := cfg.Validate()
	require.ErrorIs(t, err, relax.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Step")
	assert.Contains(t, err.Error(), "Iterations")
}
