// SPDX-License-Identifier: MIT
// Package: graphrelax/builder
//
// options.go - functional options for BuildGraph.

package builder

import "fmt"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix is WithIDScheme for the common "<prefix><index>" labelling, e.g. "a0", "a1".
// Useful when composing two constructors into one disconnected graph.
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return fmt.Sprintf("%s%d", prefix, i) })
}
