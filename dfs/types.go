// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a pre-order hook and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex
	// (pre-order) with its tree depth; depth 0 marks a new tree root.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// FullTraversal, if true, restarts from every unvisited vertex in index
	// order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its depth in its DFS tree. This is a tree
	// depth, not a hop distance; use bfs for distances.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Tree roots do not appear.
	Parent map[string]string

	// Component maps each visited vertex to the 0-based index of its DFS tree.
	// Trees are numbered in the order their roots were reached.
	Component map[string]int

	// Trees is the number of DFS trees grown (1 in single-source mode).
	Trees int
}
