// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/bfs"
	"github.com/katalvlaran/transit/core"
)

// buildGraph adds every name in order, then one unit edge per pair.
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

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Iter(g, "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Names())
	require.Equal(t, 0, res.Level["A"])
	require.Empty(t, res.Parent)
}

// A-B, A-C, B-D, C-D, D-E: levels A0, B1, C1, D2, E3.
func TestBFS_LevelOrder(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}},
	)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Names())
	require.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}, res.Level)

	// D is first reached through B, the earlier level-1 station.
	require.Equal(t, "B", res.Parent["D"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "E"}, path)

	_, err = res.PathTo("Z")
	require.Error(t, err)
}

func TestBFS_LevelsAreNonDecreasing(t *testing.T) {
	// Cycle of six: A B C D E F A.
	names := []string{"A", "B", "C", "D", "E", "F"}
	edges := make([][2]string, 0, len(names))
	for i := range names {
		edges = append(edges, [2]string{names[i], names[(i+1)%len(names)]})
	}
	g := buildGraph(t, names, edges)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Len(t, res.Order, len(names))

	prev := 0
	seen := map[string]bool{}
	for _, v := range res.Order {
		lvl := res.Level[v.Name()]
		assert.GreaterOrEqual(t, lvl, prev)
		prev = lvl
		assert.False(t, seen[v.Name()], "duplicate %s", v)
		seen[v.Name()] = true
	}
	assert.Equal(t, 3, res.Level["D"])
}

func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"C", "D"}},
	)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Names())
	_, ok := res.Level["C"]
	require.False(t, ok)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
	)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Names())

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}, {"C", "D"}},
	)

	// Close B: D is still reachable via C.
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr *core.Vertex) bool {
		return nbr.Name() != "B"
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, res.Names())
	require.Equal(t, "C", res.Parent["D"])
}

func TestBFS_OnVisit(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)

	var visited []string
	var levels []int
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(v *core.Vertex, level int) error {
		visited = append(visited, v.Name())
		levels = append(levels, level)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, visited)
	require.Equal(t, []int{0, 1, 2}, levels)

	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(v *core.Vertex, _ int) error {
		if v.Name() == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"A", "B"}, res.Names())
}

func TestBFS_ContextCancel(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestIter_Replayable(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "C"}, {"C", "B"}},
	)

	seq, err := bfs.Iter(g, "A")
	require.NoError(t, err)

	collect := func() []string {
		var out []string
		for v := range seq {
			out = append(out, v.Name())
		}
		return out
	}
	require.Equal(t, []string{"A", "C", "B"}, collect())
	require.Equal(t, []string{"A", "C", "B"}, collect())

	// Early break stops cleanly.
	for v := range seq {
		require.Equal(t, "A", v.Name())
		break
	}
}

func TestBFS_GraphUntouched(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	before := g.String()

	for i := 0; i < 3; i++ {
		res, err := bfs.BFS(g, "B")
		require.NoError(t, err)
		require.Equal(t, []string{"B", "A"}, res.Names())
	}
	require.Equal(t, before, g.String())
}
