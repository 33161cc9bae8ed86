// SPDX-License-Identifier: MIT
// Package core provides the in-memory station graph that every other transit
// package builds on: named vertices, an undirected weighted adjacency matrix,
// and per-run scratch state for algorithms.
//
// The Graph G = (V,E) is stored densely:
//
//   - vertices in insertion order; a vertex's position is its matrix index
//   - an N x N int64 matrix, symmetric, with
//     SelfWeight (0) on the diagonal,
//     a positive travel time where an edge exists,
//     NoEdge (-1) everywhere else
//   - a name -> index map for O(1) lookups
//
// Why a dense matrix?
//
//   - Transit networks of tens or hundreds of stations fit comfortably.
//   - Edge queries and overwrites are O(1); neighbor scans are O(N) and come
//     out in a stable order without sorting.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddVertex(name string) error                 // O(N^2) matrix copy
//	AddEdge(a, b string, weight int64) error     // O(1), symmetric write
//	AddUnitEdge(a, b string) error               // weight 1
//
//	// Query
//	HasVertex(name string) bool
//	Vertex(name string) (*Vertex, error)
//	IndexOf(name string) (int, error)
//	VertexAt(i int) (*Vertex, error)
//	Edge(a, b string) (int64, error)             // may be NoEdge
//	WeightAt(i, j int) (int64, error)
//	HasEdge(a, b string) bool                    // weight > 0
//	Degree(name string) (int, error)
//	Neighbors(name string) (iter.Seq[*Vertex], error)
//	NeighborIndices(i int) ([]int, error)
//	Vertices() []*Vertex
//	Edges() []Edge
//	VertexCount(), EdgeCount() int
//	Matrix() [][]int64
//
// Scratch state:
//
//	NewStateTable(n) allocates one VertexState (visited, level, distance) per
//	vertex index. bfs, dfs and dijkstra each allocate their own table per run,
//	so nothing on the shared graph is mutated by a traversal and no reset is
//	required between runs.
//
// Errors:
//
//	ErrEmptyVertexName  – zero-length name
//	ErrDuplicateVertex  – AddVertex with an existing name
//	ErrVertexNotFound   – unknown name (lookups, edges, degree, neighbors)
//	ErrIndexOutOfRange  – bad matrix index
//	ErrBadWeight        – weight outside [MinWeight, MaxWeight]
//	ErrLoopNotAllowed   – AddEdge(a, a, w)
//
// Vertex and edge removal are not supported.
package core
