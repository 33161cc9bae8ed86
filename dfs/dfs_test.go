// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/dfs"
)

func buildGraph(t *testing.T, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddUnitEdge(e[0], e[1]))
	}

	return g
}

// A-B, A-C, B-D, C-E: pre-order A, B, D, C, E.
func tree(t *testing.T) *core.Graph {
	return buildGraph(t,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}},
	)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "nope")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dfs.Iter(core.NewGraph(), "nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDFS_PreOrder(t *testing.T) {
	res, err := dfs.DFS(tree(t), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Names())
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1, "E": 2}, res.Depth)
	require.Equal(t, map[string]string{"B": "A", "D": "B", "C": "A", "E": "C"}, res.Parent)
	require.Len(t, res.Roots, 1)
}

func TestDFS_Backtracking(t *testing.T) {
	// Square A-B-C-D-A: from A the walk goes all the way around.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
	)
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Names())
	require.Equal(t, 3, res.Depth["D"])

	// Starting at C visits B first (lower index), then A, then D.
	res, err = dfs.DFS(g, "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A", "D"}, res.Names())
}

func TestDFS_EachReachableOnce(t *testing.T) {
	// Complete graph on five stations.
	names := []string{"A", "B", "C", "D", "E"}
	var edges [][2]string
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			edges = append(edges, [2]string{names[i], names[j]})
		}
	}
	res, err := dfs.DFS(buildGraph(t, names, edges), "C")
	require.NoError(t, err)
	require.ElementsMatch(t, names, res.Names())
	require.Equal(t, "C", res.Order[0].Name())
}

func TestDFS_Disconnected(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"C", "D"}},
	)

	res, err := dfs.DFS(g, "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "D"}, res.Names())

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Names())
	require.Len(t, res.Roots, 3)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(tree(t), "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Names())
	_, ok := res.Parent["D"]
	assert.False(t, ok)

	res, err = dfs.DFS(tree(t), "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Names())
	require.Empty(t, res.Parent)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(tree(t), "A", dfs.WithFilterNeighbor(func(_, nbr *core.Vertex) bool {
		return nbr.Name() != "B"
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "E"}, res.Names())
	require.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []string
	_, err := dfs.DFS(tree(t), "A",
		dfs.WithOnVisit(func(v *core.Vertex, _ int) error {
			pre = append(pre, v.Name())
			return nil
		}),
		dfs.WithOnExit(func(v *core.Vertex) error {
			post = append(post, v.Name())
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C", "E"}, pre)
	require.Equal(t, []string{"D", "B", "E", "C", "A"}, post)

	boom := errors.New("boom")
	res, err := dfs.DFS(tree(t), "A", dfs.WithOnVisit(func(v *core.Vertex, _ int) error {
		if v.Name() == "D" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"A", "B", "D"}, res.Names())

	_, err = dfs.DFS(tree(t), "A", dfs.WithOnExit(func(*core.Vertex) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestDFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(tree(t), "A", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestIter_Replayable(t *testing.T) {
	seq, err := dfs.Iter(tree(t), "A")
	require.NoError(t, err)

	for range 2 {
		var got []string
		for v := range seq {
			got = append(got, v.Name())
		}
		require.Equal(t, []string{"A", "B", "D", "C", "E"}, got)
	}
}
