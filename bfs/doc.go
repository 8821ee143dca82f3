// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances (hop counts).
//
// What
//
//   - BFS(g, startID): ID-keyed Result with visit Order, Depth, Parent,
//     per-depth Layers, PathTo reconstruction, and an OnVisit hook.
//   - Distances(g, src): index-keyed Hops (Dist slice + visit Order), the
//     per-source kernel behind the all-pairs tables in package distance.
//   - Both honor MaxDepth (d>0) or "no limit" (d==0) and context cancellation.
//
// Determinism
//
//	core.Graph.NeighborIndices is ordered by vertex index and the search
//	enqueues in that order, so visit sequences are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)   (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
