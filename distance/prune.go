// SPDX-License-Identifier: MIT
// Package: graphrelax/distance
//
// prune.go - seeded thinning of long-range pairs.
//
// Contract:
//   • Pairs with d ≤ Cutoff are always kept.
//   • A pair with d > Cutoff survives with probability (Cutoff/d)^Decay.
//   • Same Buckets + same PruneConfig ⇒ same result (one RNG draw per
//     candidate pair, in bucket then pair order).
//   • The input is not modified; emptied buckets disappear.

package distance

import (
	"fmt"
	"math"
	"math/rand"
)

const opPrune = "Prune"

// PruneConfig controls Prune.
type PruneConfig struct {
	// Cutoff is the largest distance that is always kept. Must be > 0.
	Cutoff int `yaml:"cutoff"`

	// Decay is the exponent of the keep probability. Must be > 0.
	Decay float64 `yaml:"decay"`

	// Seed drives the pseudo-random keep decisions.
	Seed int64 `yaml:"seed"`
}

// KeepProbability returns the survival probability of a pair at distance d.
func (c PruneConfig) KeepProbability(d int) float64 {
	if d <= c.Cutoff {
		return 1
	}

	return math.Pow(float64(c.Cutoff)/float64(d), c.Decay)
}

// Prune returns a thinned copy of b.
//
// Errors:
//   - ErrOptionViolation if b is nil, Cutoff ≤ 0 or Decay ≤ 0 (or NaN).
//
// Complexity:
//   - Time O(P) for P pairs; Space O(P') for the kept pairs.
func Prune(b *Buckets, cfg PruneConfig) (*Buckets, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: nil buckets: %w", opPrune, ErrOptionViolation)
	}
	if cfg.Cutoff <= 0 {
		return nil, fmt.Errorf("%s: cutoff %d must be positive: %w", opPrune, cfg.Cutoff, ErrOptionViolation)
	}
	if !(cfg.Decay > 0) {
		return nil, fmt.Errorf("%s: decay %g must be positive: %w", opPrune, cfg.Decay, ErrOptionViolation)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	raw := make(map[int][]Pair, b.Len())
	for _, d := range b.Distances() {
		pairs := b.Pairs(d)
		if d <= cfg.Cutoff {
			raw[d] = pairs
			continue
		}
		p := cfg.KeepProbability(d)
		kept := make([]Pair, 0, int(math.Ceil(p*float64(len(pairs)))))
		for _, pr := range pairs {
			if rng.Float64() < p {
				kept = append(kept, pr)
			}
		}
		raw[d] = kept
	}

	return newBuckets(raw), nil
}
