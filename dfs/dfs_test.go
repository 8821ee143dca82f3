package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphrelax/builder"
	"github.com/katalvlaran/graphrelax/core"
	"github.com/katalvlaran/graphrelax/dfs"
)

// twoPieces builds a path a-b-c plus an edge x-y and an isolated z.
func twoPieces(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil,
		builder.EdgeList([][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}}),
		builder.Vertices("z"))
	require.NoError(t, err)

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleSource(t *testing.T) {
	g := twoPieces(t)
	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, res.Depth)
	assert.Equal(t, map[string]string{"b": "a", "c": "b"}, res.Parent)
	assert.Equal(t, 1, res.Trees)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(twoPieces(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Trees)
	assert.Equal(t, 0, res.Component["c"])
	assert.Equal(t, 1, res.Component["y"])
	assert.Equal(t, 2, res.Component["z"])
	assert.Len(t, res.Order, 6)
}

func TestDFS_OnVisit(t *testing.T) {
	var pre []string
	var depths []int
	res, err := dfs.DFS(twoPieces(t), "b",
		dfs.WithOnVisit(func(id string, depth int) error {
			pre = append(pre, id)
			depths = append(depths, depth)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, pre)
	assert.Equal(t, []int{0, 1, 1}, depths)
	assert.Equal(t, []string{"a", "c", "b"}, res.Order)

	roots := 0
	_, err = dfs.DFS(twoPieces(t), "", dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(_ string, depth int) error {
			if depth == 0 {
				roots++
			}
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, 3, roots)

	stop := errors.New("stop")
	res, err = dfs.DFS(twoPieces(t), "a", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Empty(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(twoPieces(t), "a", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := dfs.Components(twoPieces(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"x", "y"}, {"z"}}, comps)

	g, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Dodecahedron, false))
	require.NoError(t, err)
	comps, err = dfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 20)

	comps, err = dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}
