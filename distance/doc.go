// Package distance classifies the vertex pairs of a core.Graph by hop distance.
//
// Classify runs one breadth-first search per vertex (or, on request, a dense
// Floyd–Warshall closure) and groups every reachable unordered pair {i, j},
// i < j, into the bucket of its graph distance d ≥ 1. Vertex indices are the
// insertion indices of core.Graph, i.e. the rows of a position matrix.
//
// Guarantees:
//
//   - Partition: every reachable unordered pair is stored exactly once, in exactly
//     one bucket. Unreachable pairs are absent.
//   - Ordering: buckets iterate by ascending distance. Within a bucket, BFS
//     classification lists pairs by source index then discovery order;
//     Floyd–Warshall lists them by (I, J).
//   - Immutability: a *Buckets is never modified after construction; Prune
//     returns a new value.
//
// Long-range pairs dominate the pair count of large graphs. Prune thins them
// with a seeded, distance-dependent keep probability (Cutoff/d)^Decay while
// keeping every pair at or below the cutoff.
package distance
