// File: methods_adjacent.go
// Role: Neighborhood queries and private adjacency maintenance.
//
// Determinism:
//   - NeighborIDs() returns neighbors ordered by Vertex.Index, so breadth-first
//     discovery order (and therefore bucket order) is reproducible run to run.
//
// Concurrency:
//   - Readers take muVert.RLock then muEdgeAdj.RLock (global lock order).

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the unique vertices adjacent to id, excluding id itself,
// ordered by ascending Vertex.Index.
//
// Implementation:
//   - Stage 1: Validate id and presence under muVert.RLock.
//   - Stage 2: Collect adjacency keys under muEdgeAdj.RLock, skipping self-loops.
//   - Stage 3: Sort by Index.
//
// Returns:
//   - []string: fresh slice of neighbor IDs.
//   - error: ErrEmptyVertexID or ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k) for k unique neighbors, Space O(k).
//
// Notes:
//   - Parallel edges collapse to one neighbor and loops are dropped, which is
//     exactly the simple-connectivity view hop distances need.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr, bucket := range g.adjacency[id] {
		if nbr == id || len(bucket) == 0 {
			continue
		}
		ids = append(ids, nbr)
	}
	sort.Slice(ids, func(a, b int) bool {
		return g.vertices[ids[a]].Index < g.vertices[ids[b]].Index
	})

	return ids, nil
}

// NeighborIndices is NeighborIDs translated to vertex indices.
func (g *Graph) NeighborIndices(id string) ([]int, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, len(ids))
	for i, nbr := range ids {
		out[i] = g.vertices[nbr].Index
	}

	return out, nil
}

// ensureAdjacency bootstraps the outer bucket for id. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// linkAdjacency records eid under adjacency[from][to]. Caller holds muEdgeAdj.
func linkAdjacency(g *Graph, from, to, eid string) {
	ensureAdjacency(g, from)
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}
