// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating views of the graph (matrix copy, textual dump).

package core

import (
	"strconv"
	"strings"
)

// Matrix returns a deep copy of the adjacency matrix.
// Complexity: O(N^2).
func (g *Graph) Matrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int64, len(g.matrix))
	for i, row := range g.matrix {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}

	return out
}

// String lists the vertices, one per tab-indented line, followed by the
// adjacency matrix with space-separated cells.
//
//	vertices:
//		A
//		B
//
//	Adjacency matrix:
//		0 5
//		5 0
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	if g.name != "" {
		b.WriteString("graph ")
		b.WriteString(g.name)
		b.WriteString("\n")
	}
	b.WriteString("vertices:\n")
	for _, v := range g.vertices {
		b.WriteString("\t")
		b.WriteString(v.name)
		b.WriteString("\n")
	}

	b.WriteString("\nAdjacency matrix:\n")
	for _, row := range g.matrix {
		b.WriteString("\t")
		for j, w := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(strconv.FormatInt(w, 10))
		}
		b.WriteString("\n")
	}

	return b.String()
}
