package dfs

import (
	"sort"

	"github.com/katalvlaran/graphrelax/core"
)

// Components returns the connected components of g. Each component lists its
// vertex IDs by ascending index, and components are ordered by their
// lowest-index vertex. Isolated vertices form singleton components.
//
// Vertices in different components never interact during relaxation, so the
// component count tells how many rigid bodies a layout decomposes into.
//
// Complexity: O(V + E + V log V).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var comps [][]string
	collect := func(id string, depth int) error {
		if depth == 0 {
			comps = append(comps, nil)
		}
		last := len(comps) - 1
		comps[last] = append(comps[last], id)
		return nil
	}
	if _, err := DFS(g, "", WithFullTraversal(), WithOnVisit(collect)); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	for _, comp := range comps {
		sort.Slice(comp, func(a, b int) bool { return index[comp[a]] < index[comp[b]] })
	}

	return comps, nil
}
