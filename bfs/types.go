// Package bfs provides tunable options, results and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID (or index) is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Unreached marks a vertex in Hops.Dist that the search did not reach.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. Returning an error aborts
	// the search. Only BFS calls it; Distances never does.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Background context, no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the ID-keyed outcome of BFS.
//
// Vertices absent from Depth are unreachable (or beyond MaxDepth).
type Result struct {
	// Order lists vertices in visit sequence.
	Order []string

	// Depth maps vertex ID to hop distance from the start.
	Depth map[string]int

	// Parent maps every reached vertex except the start to its BFS-tree parent.
	Parent map[string]string

	// Layers[d] holds the vertices at depth d, in visit order.
	Layers [][]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns a shortest path from the start vertex to id, inclusive at both ends.
func (r *Result) PathTo(id string) ([]string, error) {
	d, ok := r.Depth[id]
	if !ok {
		return nil, fmt.Errorf("PathTo(%q): %w", id, ErrNoPath)
	}
	path := make([]string, d+1)
	for i := d; i >= 0; i-- {
		path[i] = id
		id = r.Parent[id]
	}

	return path, nil
}

// Hops is the index-keyed outcome of Distances. Index i is the vertex with
// core index i.
type Hops struct {
	// Source is the start index.
	Source int

	// Dist[i] is the hop distance to vertex i, or Unreached.
	Dist []int

	// Order lists reached indices in visit sequence, Source first.
	Order []int
}
