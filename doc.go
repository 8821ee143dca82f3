// Package graphrelax turns graph distances into geometry: it moves the
// vertices of a graph until their Euclidean separations approach their
// hop distances.
//
// 🚀 What is graphrelax?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitives: thread-safe Graph with stable vertex indices
//		• Builders: Platonic solids, cycles, paths, grids, edge lists
//		• Traversals: BFS (distances), DFS (connected components)
//		• Distance buckets: every unordered pair grouped by hop distance
//		• Relaxation: spring force f(r,d) = r − d, explicit Euler steps,
//		  optional periodic cell with minimum-image separations
//		• Scenarios & CLI: YAML run files, the graphrelax command
//		• Metrics: Prometheus collector fed by the relaxation loop
//
// Under the hood, everything is organized into subpackages:
//
//	core/     - Graph, Vertex, Edge types & thread-safe primitives
//	builder/  - deterministic topology constructors
//	bfs/      - breadth-first search with depth limits
//	dfs/      - depth-first search & connected components
//	distance/ - all-pairs hop distances grouped into buckets, pruning
//	relax/    - force evaluation and the Euler relaxation engine
//	metrics/  - Prometheus observer for relax
//	scenario/ - YAML scenario files and their execution
//	cmd/graphrelax - the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	relaxes to a unit square with diagonals pulled towards 2 and
//	sides pushed from 1, settling where the forces balance.
//
//	go install github.com/katalvlaran/graphrelax/cmd/graphrelax@latest
package graphrelax
