// Package dfs implements depth-first traversal and connected-component
// detection on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - A pre-order hook that receives tree depth
//   - Cancellation via context.Context
//   - Forest traversal over every component
//   - Components: groups vertices into connected components.
//
// Why:
//   - Disconnected parts of a graph never exert forces on each other, so a
//     relaxation of k components converges to k independent rigid bodies.
//     Reporting k up front explains layouts that look "broken".
//
// Determinism:
//
//	Neighbors are explored in vertex-index order and forest roots are taken
//	in index order, so Order, Parent and Component are reproducible.
package dfs
