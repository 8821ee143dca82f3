package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphrelax/bfs"
	"github.com/katalvlaran/graphrelax/core"
)

// square builds the 4-cycle A-B-C-D-A.
func square() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "A")
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SquareLayers covers a 4-cycle: opposite corner at depth 2, visit order by index.
func TestBFS_SquareLayers(t *testing.T) {
	res, err := bfs.BFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := [][]string{{"A"}, {"B", "D"}, {"C"}}; !reflect.DeepEqual(res.Layers, want) {
		t.Errorf("Layers = %v; want %v", res.Layers, want)
	}
	if want := map[string]string{"B": "A", "D": "A", "C": "B"}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
}

// TestResult_PathTo walks parents back to the start.
func TestResult_PathTo(t *testing.T) {
	g := square()
	_ = g.AddVertex("Z")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if p, err := res.PathTo("C"); err != nil || !reflect.DeepEqual(p, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v, %v; want [A B C]", p, err)
	}
	if p, err := res.PathTo("A"); err != nil || !reflect.DeepEqual(p, []string{"A"}) {
		t.Errorf("PathTo(A) = %v, %v; want [A]", p, err)
	}
	if _, err := res.PathTo("Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Z): want ErrNoPath, got %v", err)
	}
}

// TestBFS_LoopsAndMultiEdges ensures loops/parallel edges do not shorten or duplicate.
func TestBFS_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "A")
	_, _ = g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth["C"] != 2 {
		t.Errorf("Depth[C] = %d; want 2", res.Depth["C"])
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "Y")
	_, _ = g.AddEdge("P", "Q")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if resX.Reached("P") {
		t.Errorf("P must be unreachable from X")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	for depth, want := range map[int][]string{
		1:  {"A", "B"},
		0:  {"A", "B", "C"},
		10: {"A", "B", "C"},
	} {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", depth, res.Order, want)
		}
	}
}

// TestBFS_OnVisitAbort verifies that hook errors abort the traversal and are wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	stop := errors.New("stop")
	var seen []string
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if !reflect.DeepEqual(seen, []string{"A", "B"}) {
		t.Errorf("visited %v; want [A B]", seen)
	}
	if res == nil || !res.Reached("B") || res.Reached("C") {
		t.Errorf("partial result should stop at B, got %+v", res)
	}
}

// TestBFS_Cancelled verifies context cancellation is honored before the first visit.
func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if _, err := bfs.Distances(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Distances: want context.Canceled, got %v", err)
	}
}

// TestDistances matches BFS depths and marks unreachable vertices.
func TestDistances(t *testing.T) {
	g := square()
	_ = g.AddVertex("Z")

	hops, err := bfs.Distances(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 0, 1, 2, bfs.Unreached}; !reflect.DeepEqual(hops.Dist, want) {
		t.Errorf("Dist = %v; want %v", hops.Dist, want)
	}
	if want := []int{1, 0, 2, 3}; !reflect.DeepEqual(hops.Order, want) {
		t.Errorf("Order = %v; want %v", hops.Order, want)
	}

	if hops, _ = bfs.Distances(g, 0, bfs.WithMaxDepth(1)); hops.Dist[2] != bfs.Unreached {
		t.Errorf("MaxDepth=1: Dist[2] = %d; want Unreached", hops.Dist[2])
	}
}

// TestDistances_Errors covers nil graph, index range and bad options.
func TestDistances_Errors(t *testing.T) {
	if _, err := bfs.Distances(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := square()
	for _, src := range []int{-1, 4} {
		if _, err := bfs.Distances(g, src); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("src=%d: want ErrStartVertexNotFound, got %v", src, err)
		}
	}
	if _, err := bfs.Distances(g, 0, bfs.WithMaxDepth(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}
