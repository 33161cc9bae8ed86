// SPDX-License-Identifier: MIT
// Package core defines the station Graph, its Vertex type and the per-run
// VertexState scratch table used by traversal and shortest-path algorithms.
//
// This file declares Vertex, Graph, GraphOption, the sentinel errors, the
// matrix sentinels and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexName  - vertex name is the empty string.
//	ErrDuplicateVertex  - a vertex with the same name already exists.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrIndexOutOfRange  - vertex index outside [0, VertexCount()).
//	ErrBadWeight        - edge weight outside [MinWeight, MaxWeight].
//	ErrLoopNotAllowed   - edge from a vertex to itself.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that the provided vertex name is empty.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates an attempt to insert a name that is already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrIndexOutOfRange indicates a vertex index outside the current matrix.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same vertex.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Matrix cell sentinels.
const (
	// NoEdge marks a pair of distinct vertices without a connection.
	// It is below MinWeight so HasEdge can test "weight > 0".
	NoEdge int64 = -1

	// SelfWeight is the diagonal value: no distance from a vertex to itself.
	SelfWeight int64 = 0

	// MinWeight is the smallest travel time accepted by AddEdge.
	MinWeight int64 = 1

	// UnitWeight is the weight used by AddUnitEdge.
	UnitWeight int64 = 1

	// MaxWeight is the largest travel time accepted by AddEdge. A route over
	// any realistic number of stations sums to far less than Infinity, so
	// every stored edge stays routable.
	MaxWeight int64 = math.MaxInt32
)

// Vertex is a named station. The name is its only identity and never changes
// after creation; two vertices are equal iff their names are equal.
type Vertex struct {
	name string
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithName labels the graph. The name shows up in String() and DOT output.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is an undirected, weighted graph stored as a dense adjacency matrix.
//
// vertices holds the owned Vertex records in insertion order; the index of a
// vertex in that slice is its row and column in matrix. index maps names to
// those positions. matrix is always len(vertices) x len(vertices) and
// symmetric, with SelfWeight on the diagonal and NoEdge for absent edges.
//
// mu guards every field; readers take RLock, so independent queries and
// algorithm runs may proceed concurrently once loading is finished.
type Graph struct {
	mu sync.RWMutex

	name string

	vertices []*Vertex
	index    map[string]int
	matrix   [][]int64

	// edgeCount counts unordered vertex pairs holding a positive weight.
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make([]*Vertex, 0),
		index:    make(map[string]int),
		matrix:   make([][]int64, 0),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Name returns the label set by WithName (empty by default).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}
