// SPDX-License-Identifier: MIT
// Package: graphrelax/relax
//
// config.go - Config, defaults and functional options for Relax.
//
// Validation:
//   • Options only record values; the resolved Config is checked once by
//     go-playground/validator (struct tags below) and any failure is reported
//     as ErrInvalidConfig.

package relax

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphrelax/distance"
)

const (
	// DefaultStep is the explicit-Euler time step.
	DefaultStep = 0.01

	// DefaultIterations is the number of Euler steps.
	DefaultIterations = 10
)

// Config is the resolved Relax configuration.
type Config struct {
	// Step is the Euler time step dt.
	Step float64 `validate:"gt=0"`

	// Iterations is the exact number of steps; 0 returns an unchanged copy.
	Iterations int `validate:"gte=0"`

	// Workers bounds concurrent bucket evaluation; 1 is sequential.
	Workers int `validate:"gte=1"`

	// MaxDistance, if > 0, ignores pairs farther apart than this many hops.
	MaxDistance int `validate:"gte=0"`

	// Cell is the optional periodic cell (rows are lattice vectors).
	Cell *mat.Dense `validate:"-"`

	// Law is the pairwise force law; nil means Spring.
	Law ForceLaw `validate:"-"`

	// Prune, if set, thins long-range pairs before iterating.
	Prune *distance.PruneConfig `validate:"-"`

	// Buckets, if set, replaces the internal classification.
	Buckets *distance.Buckets `validate:"-"`

	Ctx      context.Context `validate:"-"`
	Logger   *zap.Logger     `validate:"-"`
	Observer Observer        `validate:"-"`
}

// DefaultConfig returns dt 0.01, 10 iterations, sequential evaluation, the
// Spring law, no cell, a no-op logger and a no-op observer.
func DefaultConfig() Config {
	return Config{
		Step:       DefaultStep,
		Iterations: DefaultIterations,
		Workers:    1,
		Law:        Spring,
		Ctx:        context.Background(),
		Logger:     zap.NewNop(),
		Observer:   nopObserver{},
	}
}

var validate = validator.New()

// Validate checks the numeric fields of c.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// Option configures Relax.
type Option func(*Config)

// WithStep sets the Euler time step (must be > 0).
func WithStep(dt float64) Option {
	return func(c *Config) { c.Step = dt }
}

// WithIterations sets the exact number of Euler steps (must be ≥ 0).
func WithIterations(n int) Option {
	return func(c *Config) { c.Iterations = n }
}

// WithCell enables periodic boundaries. Positions are then fractional.
func WithCell(cell *mat.Dense) Option {
	return func(c *Config) { c.Cell = cell }
}

// WithForceLaw replaces Spring. A nil law restores Spring.
func WithForceLaw(law ForceLaw) Option {
	return func(c *Config) {
		if law == nil {
			law = Spring
		}
		c.Law = law
	}
}

// WithMaxDistance ignores pairs more than k hops apart (0 = no limit).
func WithMaxDistance(k int) Option {
	return func(c *Config) { c.MaxDistance = k }
}

// WithPrune thins long-range pairs with distance.Prune before iterating.
func WithPrune(cfg distance.PruneConfig) Option {
	return func(c *Config) { c.Prune = &cfg }
}

// WithParallel evaluates up to workers buckets of one iteration concurrently.
// Results are identical to sequential evaluation.
func WithParallel(workers int) Option {
	return func(c *Config) { c.Workers = workers }
}

// WithBuckets reuses a precomputed classification of the same graph.
func WithBuckets(b *distance.Buckets) Option {
	return func(c *Config) { c.Buckets = b }
}

// WithContext sets a cancellation context, checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithObserver registers an iteration observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		if o != nil {
			c.Observer = o
		}
	}
}
