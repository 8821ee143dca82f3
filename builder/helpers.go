// SPDX-License-Identifier: MIT
// Package: graphrelax/builder
//
// helpers.go - shared vertex/edge emission used by every impl_*.go constructor.

package builder

import "github.com/katalvlaran/graphrelax/core"

// addIndexedVertices adds cfg.idFn(0..n-1) in ascending order, which fixes the
// vertex rows used by position matrices.
// Complexity: O(n).
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, err, "AddVertex(%s)", id)
		}
	}

	return nil
}

// addIndexedEdge joins idFn(u) and idFn(v).
func addIndexedEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	return addNamedEdge(g, method, cfg.idFn(u), cfg.idFn(v))
}

// addNamedEdge joins two explicit vertex IDs, wrapping core errors with method context.
func addNamedEdge(g *core.Graph, method, uID, vID string) error {
	if _, err := g.AddEdge(uID, vID); err != nil {
		return builderErrorf(method, err, "AddEdge(%s-%s)", uID, vID)
	}

	return nil
}
