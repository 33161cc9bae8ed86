// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns records in insertion order, which is also index order.
//
// Concurrency:
//   - AddVertex takes the write lock; every query takes the read lock.

package core

import "fmt"

// AddVertex appends a station named name.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyVertexName).
//   - Stage 2: Under the write lock, reject a name already present (ErrDuplicateVertex).
//   - Stage 3: Allocate an (N+1)x(N+1) matrix, copy the previous N x N block,
//     fill the new row and column with NoEdge and the new diagonal cell with SelfWeight.
//
// Errors:
//   - ErrEmptyVertexName: if name == "".
//   - ErrDuplicateVertex: if a vertex with this name exists.
//
// Complexity:
//   - Time O(N^2) for the matrix copy, Space O(N^2).
func (g *Graph) AddVertex(name string) error {
	if name == "" {
		return ErrEmptyVertexName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	n := len(g.vertices)
	grown := make([][]int64, n+1)
	for i := 0; i <= n; i++ {
		row := make([]int64, n+1)
		if i < n {
			copy(row, g.matrix[i])
		} else {
			for j := 0; j < n; j++ {
				row[j] = NoEdge
			}
		}
		if i == n {
			row[n] = SelfWeight
		} else {
			row[n] = NoEdge
		}
		grown[i] = row
	}

	g.matrix = grown
	g.vertices = append(g.vertices, &Vertex{name: name})
	g.index[name] = n

	return nil
}

// HasVertex reports whether a station named name exists. It never fails.
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[name]

	return ok
}

// Vertex returns the graph-owned record for name.
//
// Errors:
//   - ErrVertexNotFound: if no station has this name.
func (g *Graph) Vertex(name string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, err := g.indexOf(name)
	if err != nil {
		return nil, err
	}

	return g.vertices[i], nil
}

// IndexOf returns the row/column position of name in the adjacency matrix.
func (g *Graph) IndexOf(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexOf(name)
}

// VertexAt returns the vertex stored at index i.
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	return g.vertices[i], nil
}

// VertexCount returns the number of stations.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns the owned vertex records in insertion order.
// The slice is a copy; the records are shared and immutable.
// Complexity: O(N).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Degree returns how many stations share a positive-weight edge with name.
//
// Errors:
//   - ErrVertexNotFound: if no station has this name.
//
// Complexity: O(N).
func (g *Graph) Degree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, err := g.indexOf(name)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, w := range g.matrix[i] {
		if w > 0 {
			count++
		}
	}

	return count, nil
}

// indexOf resolves a name; callers hold g.mu.
func (g *Graph) indexOf(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return i, nil
}

// checkIndex validates a matrix position; callers hold g.mu.
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("%w: %d (vertices=%d)", ErrIndexOutOfRange, i, len(g.vertices))
	}

	return nil
}
