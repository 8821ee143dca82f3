// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphrelax/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker is the index-based search shared by BFS and Distances.
// Vertex i is ids[i]; dist doubles as the visited set.
type walker struct {
	graph    *core.Graph
	ids      []string
	ctx      context.Context
	maxDepth int
	onVisit  func(idx, depth int) error

	dist   []int
	parent []int
	queue  []int
}

func newWalker(g *core.Graph, o Options) *walker {
	ids := g.Vertices()
	w := &walker{
		graph:    g,
		ids:      ids,
		ctx:      o.Ctx,
		maxDepth: o.MaxDepth,
		dist:     make([]int, len(ids)),
		parent:   make([]int, len(ids)),
		queue:    make([]int, 0, len(ids)),
	}
	for i := range w.dist {
		w.dist[i] = Unreached
		w.parent[i] = -1
	}

	return w
}

// run searches from src. On return w.queue holds every reached index in
// visit order (the queue is consumed by a cursor, never shrunk).
func (w *walker) run(src int) error {
	w.dist[src] = 0
	w.queue = append(w.queue, src)

	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		u := w.queue[head]
		if w.onVisit != nil {
			if err := w.onVisit(u, w.dist[u]); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %q: %w", w.ids[u], err)
			}
		}

		next := w.dist[u] + 1
		if w.maxDepth > 0 && next > w.maxDepth {
			continue
		}
		nbrs, err := w.graph.NeighborIndices(w.ids[u])
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, w.ids[u], err)
		}
		for _, v := range nbrs {
			if w.dist[v] != Unreached {
				continue
			}
			w.dist[v] = next
			w.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}

	return nil
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any user-supplied hook error.
// On a hook error or cancellation the partial Result is returned too.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	src, err := g.VertexIndex(startID)
	if err != nil {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	w.onVisit = func(idx, depth int) error { return o.OnVisit(w.ids[idx], depth) }
	err = w.run(src)

	return w.result(), err
}

// result translates the walker state into an ID-keyed Result.
func (w *walker) result() *Result {
	res := &Result{
		Order:  make([]string, 0, len(w.queue)),
		Depth:  make(map[string]int, len(w.queue)),
		Parent: make(map[string]string, len(w.queue)),
	}
	for _, u := range w.queue {
		id, d := w.ids[u], w.dist[u]
		res.Order = append(res.Order, id)
		res.Depth[id] = d
		if p := w.parent[u]; p >= 0 {
			res.Parent[id] = w.ids[p]
		}
		if d == len(res.Layers) {
			res.Layers = append(res.Layers, nil)
		}
		res.Layers[d] = append(res.Layers[d], id)
	}

	return res
}

// Distances runs an index-based search from vertex index src and returns the
// hop distance of every vertex. It is the per-source kernel of an all-pairs
// distance table: no string maps are built and OnVisit is not called.
func Distances(g *core.Graph, src int, opts ...Option) (*Hops, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if src < 0 || src >= g.VertexCount() {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, src)
	}

	w := newWalker(g, o)
	if err = w.run(src); err != nil {
		return nil, err
	}

	return &Hops{Source: src, Dist: w.dist, Order: w.queue}, nil
}
