// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or every component via WithFullTraversal
//   - Hook: OnVisit (pre-order, with depth) with error aborts
//   - Cancellation via context.Context
//   - Components(g): connected components in vertex-index order
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks.
//   - Memory: O(V) for recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphrelax/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	visited map[string]bool
}

// DFS performs depth-first search on graph g. With WithFullTraversal it covers
// all components, rooting each new tree at the lowest-index unvisited vertex;
// otherwise it starts only from startID.
// On error the partial result is returned alongside it.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make(map[string]bool, len(vertices)),
		res: &DFSResult{
			Order:     make([]string, 0, len(vertices)),
			Depth:     make(map[string]int, len(vertices)),
			Parent:    make(map[string]string, len(vertices)),
			Component: make(map[string]int, len(vertices)),
		},
	}

	roots := []string{startID}
	if dopts.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if walker.visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return walker.res, err
		}
		walker.res.Trees++
	}

	return walker.res, nil
}

// traverse visits vertex id at given depth, recursing to unvisited neighbors
// in index order.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Component[id] = w.res.Trees

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if w.visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
