// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// classify.go - Classify: all-pairs hop distances grouped into Buckets.
//
// Contract:
//   • Pure function of the graph; g is only read.
//   • Loops and parallel edges never change hop distances (core.NeighborIDs
//     already collapses them).
//   • Disconnected pairs are absent from every bucket.
//
// Determinism:
//   • Sources are visited in vertex-index order and core.NeighborIDs is
//     index-ordered, so identical graphs yield identical Buckets.

package distance

import (
	"fmt"

	"github.com/katalvlaran/graphrelax/bfs"
	"github.com/katalvlaran/graphrelax/core"
)

const opClassify = "Classify"

// Classify computes the hop distance of every reachable pair of g and returns
// the pairs grouped by distance.
//
// Implementation:
//   - MethodBFS: one bfs.Distances per source i; every reached j > i at depth d ≥ 1
//     is appended to bucket d in discovery order.
//   - MethodFloydWarshall: unit-weight adjacency closure on a gonum matrix,
//     then a row-major scan of the upper triangle.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ctx.Err() on cancellation,
//     or a wrapped bfs error.
//
// Complexity:
//   - BFS: O(V·(V+E)) time, O(V+P) space for P reachable pairs.
//   - Floyd–Warshall: O(V³) time, O(V²) space.
func Classify(g *core.Graph, opts ...Option) (*Buckets, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opClassify, o.err)
	}

	var (
		raw map[int][]Pair
		err error
	)
	switch o.Method {
	case MethodFloydWarshall:
		raw, err = classifyFloydWarshall(g, o)
	default:
		raw, err = classifyBFS(g, o)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opClassify, o.Method, err)
	}

	return newBuckets(raw), nil
}

// classifyBFS fills raw buckets from one index-based breadth-first search per source.
func classifyBFS(g *core.Graph, o Options) (map[int][]Pair, error) {
	raw := make(map[int][]Pair)
	for i := 0; i < g.VertexCount(); i++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		hops, err := bfs.Distances(g, i, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(o.MaxDistance))
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		for _, j := range hops.Order {
			if j <= i {
				continue
			}
			d := hops.Dist[j]
			raw[d] = append(raw[d], Pair{I: i, J: j})
		}
	}

	return raw, nil
}
