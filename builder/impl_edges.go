// SPDX-License-Identifier: MIT
// Package: graphrelax/builder
//
// impl_edges.go - implementation of EdgeList(pairs) constructor.
//
// Contract:
//   • Every pair must have two non-empty IDs (else ErrOptionViolation).
//   • Endpoints are created on first sight, in pair order (first, second).
//   • Loops/parallel edges follow the core graph policy (WithLoops/WithMultiEdges).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphrelax/core"
)

const methodEdgeList = "EdgeList"

// EdgeList returns a Constructor that adds the given undirected edges verbatim.
// It is the bridge between hand-written scenario files and core.Graph.
func EdgeList(pairs [][2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, p := range pairs {
			if p[0] == "" || p[1] == "" {
				return fmt.Errorf("%s: pair %d has an empty endpoint: %w", methodEdgeList, i, ErrOptionViolation)
			}
			if err := addNamedEdge(g, methodEdgeList, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Vertices returns a Constructor that adds isolated vertices in the given order.
// Combined with EdgeList it pins the row order of a hand-written graph.
func Vertices(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return builderErrorf(methodEdgeList, err, "AddVertex(%q)", id)
			}
		}

		return nil
	}
}
