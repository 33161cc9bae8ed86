// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIndices, Edges).
//
// Determinism:
//   - Neighbors are produced in ascending matrix index, i.e. insertion order.
//   - Edges() lists pairs (i<j) row by row.
//
// Concurrency:
//   - Rows are copied under the read lock and yielded after it is released,
//     so loop bodies may call back into the graph.

package core

import "iter"

// Edge is a read-only view of one connected pair, From having the lower index.
type Edge struct {
	From   *Vertex
	To     *Vertex
	Weight int64
}

// Neighbors returns a lazy sequence of the stations directly connected to
// name, in ascending index order.
//
// The sequence is restartable: every range over it re-reads the current row,
// so it reflects edges added after the call. Breaking out of the loop early
// is fine.
//
// Errors:
//   - ErrVertexNotFound: if name is absent (checked once, at call time).
//
// Complexity:
//   - O(1) to build; O(N) per full range.
func (g *Graph) Neighbors(name string) (iter.Seq[*Vertex], error) {
	i, err := g.IndexOf(name)
	if err != nil {
		return nil, err
	}

	return func(yield func(*Vertex) bool) {
		row, verts := g.rowSnapshot(i)
		for j, w := range row {
			if w <= 0 {
				continue
			}
			if !yield(verts[j]) {
				return
			}
		}
	}, nil
}

// NeighborIndices returns the positive-weight columns of row i in ascending
// order. Algorithms use it to stay in index space.
//
// Errors:
//   - ErrIndexOutOfRange: if i is outside the matrix.
func (g *Graph) NeighborIndices(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	out := make([]int, 0)
	for j, w := range g.matrix[i] {
		if w > 0 {
			out = append(out, j)
		}
	}

	return out, nil
}

// Edges lists every connected pair once, ordered by (From index, To index).
// Complexity: O(N^2).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for i := range g.matrix {
		for j := i + 1; j < len(g.matrix); j++ {
			if w := g.matrix[i][j]; w > 0 {
				out = append(out, Edge{From: g.vertices[i], To: g.vertices[j], Weight: w})
			}
		}
	}

	return out
}

// rowSnapshot copies row i and the vertex slice under the read lock.
// A row shorter than the vertex slice cannot occur; the matrix only grows.
func (g *Graph) rowSnapshot(i int) ([]int64, []*Vertex) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := make([]int64, len(g.matrix[i]))
	copy(row, g.matrix[i])
	verts := make([]*Vertex, len(g.vertices))
	copy(verts, g.vertices)

	return row, verts
}
