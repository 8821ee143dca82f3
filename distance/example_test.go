package distance_test

import (
	"fmt"

	"github.com/katalvlaran/graphrelax/builder"
	"github.com/katalvlaran/graphrelax/distance"
)

// ExampleClassify groups the octahedron's pairs: 12 edges and 3 antipodal diagonals.
func ExampleClassify() {
	g, _ := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Octahedron, false))
	b, err := distance.Classify(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = b.Each(func(d int, pairs []distance.Pair) error {
		fmt.Printf("d=%d pairs=%d\n", d, len(pairs))
		return nil
	})
	fmt.Println(b.Pairs(2))
	// Output:
	// d=1 pairs=12
	// d=2 pairs=3
	// [{0 1} {2 3} {4 5}]
}
