package relax_test

import (
	"testing"

	"github.com/katalvlaran/graphrelax/builder"
	"github.com/katalvlaran/graphrelax/distance"
	"github.com/katalvlaran/graphrelax/relax"
)

// BenchmarkRelax_Octahedron measures the default ten-step run including classification.
func BenchmarkRelax_Octahedron(b *testing.B) {
	g := mustBuild(b, builder.PlatonicSolid(builder.Octahedron, false))
	pos := relax.RandomPositions(6, 3, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := relax.Relax(g, pos); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRelax_Grid compares sequential and parallel bucket evaluation on a
// 20×20 grid with a precomputed classification.
func BenchmarkRelax_Grid(b *testing.B) {
	g := mustBuild(b, builder.Grid(20, 20))
	pos := relax.RandomPositions(400, 2, 1)
	buckets, err := distance.Classify(g)
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "sequential", 4: "parallel4"}[workers], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := relax.Relax(g, pos,
					relax.WithBuckets(buckets), relax.WithParallel(workers), relax.WithIterations(5))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
