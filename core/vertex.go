// SPDX-License-Identifier: MIT
// File: vertex.go
// Role: Vertex identity plus the per-run scratch state (visited, level,
// distance) that traversals and Dijkstra keep outside the shared graph.

package core

import "math"

// Infinity is the tentative distance of a vertex nothing has reached yet.
const Infinity int64 = math.MaxInt64

// NewVertex returns a detached Vertex with the given name. Graph.AddVertex
// creates its own record; NewVertex is for callers that compare or print
// station identities without a graph at hand.
func NewVertex(name string) *Vertex {
	return &Vertex{name: name}
}

// Name returns the station name.
func (v *Vertex) Name() string {
	if v == nil {
		return ""
	}

	return v.name
}

// String implements fmt.Stringer and returns the name.
func (v *Vertex) String() string { return v.Name() }

// Equal reports whether v and other carry the same name.
// Two nil vertices are equal; a nil and a non-nil vertex are not.
func (v *Vertex) Equal(other *Vertex) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.name == other.name
}

// VertexState is the mutable scratch record an algorithm keeps for one vertex
// during one run. Mutators are plain field writes without validation.
type VertexState struct {
	visited  bool
	level    int
	distance int64
}

// Mark flags the vertex as visited (finalized, for Dijkstra).
func (s *VertexState) Mark() { s.visited = true }

// Unmark clears the visited flag.
func (s *VertexState) Unmark() { s.visited = false }

// IsMarked reports the visited flag.
func (s *VertexState) IsMarked() bool { return s.visited }

// SetLevel records the hop count from a BFS start vertex.
func (s *VertexState) SetLevel(level int) { s.level = level }

// Level returns the recorded hop count.
func (s *VertexState) Level() int { return s.level }

// SetDistance records a tentative or final distance.
func (s *VertexState) SetDistance(d int64) { s.distance = d }

// Distance returns the recorded distance; Infinity until set.
func (s *VertexState) Distance() int64 { return s.distance }

// Reset restores the initial state: unmarked, level 0, distance Infinity.
func (s *VertexState) Reset() {
	s.visited = false
	s.level = 0
	s.distance = Infinity
}

// StateTable holds one VertexState per vertex index. Each algorithm run
// allocates its own table, so runs never see each other's marks.
type StateTable struct {
	states []VertexState
}

// NewStateTable returns a table of n reset states.
// Complexity: O(n).
func NewStateTable(n int) *StateTable {
	if n < 0 {
		n = 0
	}
	t := &StateTable{states: make([]VertexState, n)}
	t.Reset()

	return t
}

// At returns the state for vertex index i. It panics if i is out of range,
// like a slice index; callers obtain indices from the same graph.
func (t *StateTable) At(i int) *VertexState { return &t.states[i] }

// Len returns the number of states held.
func (t *StateTable) Len() int { return len(t.states) }

// Reset restores every state in the table.
func (t *StateTable) Reset() {
	for i := range t.states {
		t.states[i].Reset()
	}
}
