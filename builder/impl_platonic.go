// SPDX-License-Identifier: MIT
// Package: graphrelax/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits shell edges in stable order (variants_platonic.go).
//   • If withCenter == true, adds fixed hub ID "Center" (row n) and spokes.
//
// Complexity:
//   • Time: O(V+E) for the selected solid (constants: V≤20, E≤30).
//
// AI-Hints:
//   • Octahedron is the reference relaxation fixture: 12 edges at hop distance 1,
//     3 diagonals at hop distance 2. With relax.WithMaxDistance(1) it converges
//     to unit edges; under the all-pairs law the regular octahedron settles at
//     edge (12+6√2)/18 ≈ 1.138.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphrelax/core"
)

const (
	methodPlatonicSolid = "PlatonicSolid"
	centerVertexID      = "Center"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		if err := addIndexedVertices(g, cfg, methodPlatonicSolid, n); err != nil {
			return err
		}
		for _, ch := range edges {
			if err := addIndexedEdge(g, cfg, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}

		if withCenter {
			if err := g.AddVertex(centerVertexID); err != nil {
				return builderErrorf(methodPlatonicSolid, err, "AddVertex(%s)", centerVertexID)
			}
			for i := 0; i < n; i++ {
				if err := addNamedEdge(g, methodPlatonicSolid, centerVertexID, cfg.idFn(i)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
