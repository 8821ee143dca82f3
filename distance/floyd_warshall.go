// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// floyd_warshall.go - dense APSP alternative to per-source BFS.
//
// Contract:
//   • The distance matrix is a gonum *mat.Dense; +Inf means "no path", diagonal 0.
//   • Edge weight is 1 (hop count); loops are ignored.
//
// Determinism:
//   • Loop order is fixed (k → i → j) and only strict improvements are written.

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/core"
)

// classifyFloydWarshall fills raw buckets from a dense all-pairs closure.
func classifyFloydWarshall(g *core.Graph, o Options) (map[int][]Pair, error) {
	raw := make(map[int][]Pair)
	n := g.VertexCount()
	if n == 0 {
		return raw, nil // gonum rejects 0×0 matrices
	}

	dist, err := hopMatrix(g)
	if err != nil {
		return nil, err
	}
	if err = floydWarshallInPlace(o, dist); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := dist.At(i, j)
			if math.IsInf(v, 1) {
				continue
			}
			d := int(v)
			if o.MaxDistance > 0 && d > o.MaxDistance {
				continue
			}
			raw[d] = append(raw[d], Pair{I: i, J: j})
		}
	}

	return raw, nil
}

// hopMatrix builds the initial V×V distance matrix: 0 on the diagonal,
// 1 for adjacent vertices, +Inf elsewhere.
// Complexity: O(V² + E).
func hopMatrix(g *core.Graph) (*mat.Dense, error) {
	ids := g.Vertices()
	n := len(ids)
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	for i, id := range ids {
		data[i*n+i] = 0
		nbrs, err := g.NeighborIndices(id)
		if err != nil {
			return nil, fmt.Errorf("hopMatrix: %w", err)
		}
		for _, j := range nbrs {
			data[i*n+j] = 1
		}
	}

	return mat.NewDense(n, n, data), nil
}

// floydWarshallInPlace runs the APSP closure on d's backing buffer.
// The context is checked once per pivot k.
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace(o Options, d *mat.Dense) error {
	raw := d.RawMatrix()
	n, stride, data := raw.Rows, raw.Stride, raw.Data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		baseK = k * stride
		for i = 0; i < n; i++ {
			ik = data[i*stride+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * stride
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
