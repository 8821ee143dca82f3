// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// buckets.go - the immutable distance → pairs mapping.
//
// Storage:
//   • An insertion-ordered map (github.com/wk8/go-ordered-map/v2) keyed by hop
//     distance. Keys are inserted in ascending order exactly once, so iteration
//     order is ascending distance without re-sorting on every pass.

package distance

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is an unordered vertex pair in canonical form (I < J).
// I and J are core.Graph insertion indices.
type Pair struct {
	I, J int
}

// Buckets maps every hop distance d ≥ 1 to the pairs at that distance.
// The zero value is not usable; obtain one from Classify or Prune.
type Buckets struct {
	byDistance *orderedmap.OrderedMap[int, []Pair]
	pairCount  int
}

// newBuckets freezes raw (distance → pairs) into ascending-key order.
// Empty pair lists are dropped.
func newBuckets(raw map[int][]Pair) *Buckets {
	keys := make([]int, 0, len(raw))
	for d, pairs := range raw {
		if len(pairs) > 0 {
			keys = append(keys, d)
		}
	}
	sort.Ints(keys)

	b := &Buckets{byDistance: orderedmap.New[int, []Pair]()}
	for _, d := range keys {
		b.byDistance.Set(d, raw[d])
		b.pairCount += len(raw[d])
	}

	return b
}

// Len returns the number of non-empty buckets.
func (b *Buckets) Len() int {
	return b.byDistance.Len()
}

// PairCount returns the total number of pairs over all buckets.
func (b *Buckets) PairCount() int {
	return b.pairCount
}

// Distances returns the bucket keys in ascending order.
func (b *Buckets) Distances() []int {
	out := make([]int, 0, b.byDistance.Len())
	for el := b.byDistance.Oldest(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}

	return out
}

// Pairs returns a copy of the pairs at distance d (nil if there are none).
func (b *Buckets) Pairs(d int) []Pair {
	pairs, ok := b.byDistance.Get(d)
	if !ok {
		return nil
	}
	out := make([]Pair, len(pairs))
	copy(out, pairs)

	return out
}

// MaxDistance returns the largest bucket key, or 0 when there are no pairs.
func (b *Buckets) MaxDistance() int {
	if el := b.byDistance.Newest(); el != nil {
		return el.Key
	}

	return 0
}

// Each calls fn for every bucket in ascending distance order and stops at the
// first error, which is returned unchanged.
// fn receives the internal slice and must not modify it.
func (b *Buckets) Each(fn func(d int, pairs []Pair) error) error {
	for el := b.byDistance.Oldest(); el != nil; el = el.Next() {
		if err := fn(el.Key, el.Value); err != nil {
			return err
		}
	}

	return nil
}
