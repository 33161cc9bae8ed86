// SPDX-License-Identifier: MIT
// Package dijkstra answers shortest travel-time queries between two stations.
//
// The search keeps a frontier of stations that have a tentative travel time
// but are not final. Each iteration finalizes the frontier member with the
// smallest tentative time, ties broken by lowest graph index, and relaxes its
// neighbors. The query ends as soon as the target is finalized.
//
// Complexity:
//
//   - FrontierScan: O(V²) time, O(V) space.
//   - FrontierHeap: O((V + E) log V) time, O(V + E) space (lazy decrease-key).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/transit/core"
)

// PathFinder answers repeated queries against one graph. It holds no
// per-query state, so a single PathFinder may serve concurrent callers.
type PathFinder struct {
	g    *core.Graph
	opts Options
}

// NewPathFinder binds a graph and options. Returns ErrNilGraph for nil g.
func NewPathFinder(g *core.Graph, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder{g: g, opts: cfg}, nil
}

// ShortestPath returns the minimum total weight of any path between source
// and target. Equal names return 0.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (int64, error) {
	pf, err := NewPathFinder(g, opts...)
	if err != nil {
		return 0, err
	}

	return pf.ShortestPath(source, target)
}

// Route is ShortestPath plus the station sequence that achieves it.
func Route(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	pf, err := NewPathFinder(g, opts...)
	if err != nil {
		return nil, err
	}

	return pf.Route(source, target)
}

// Options reports the configuration the PathFinder was built with.
func (pf *PathFinder) Options() Options { return pf.opts }

// ShortestPath returns the minimum total weight between source and target.
func (pf *PathFinder) ShortestPath(source, target string) (int64, error) {
	res, err := pf.Route(source, target)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// Route runs one query and reconstructs the path from predecessor links.
//
// Errors:
//   - ErrVertexNotFound if either station is missing.
//   - ErrUnreachable if no path exists within the configured limits.
func (pf *PathFinder) Route(source, target string) (*Result, error) {
	s, err := pf.g.IndexOf(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	t, err := pf.g.IndexOf(target)
	if err != nil {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	vertices := pf.g.Vertices()
	if s == t {
		return &Result{
			Source:   source,
			Target:   target,
			Distance: 0,
			Path:     []*core.Vertex{vertices[s]},
		}, nil
	}

	r := newRunner(pf.g, pf.opts, len(vertices), s, t)
	var found bool
	switch pf.opts.Frontier {
	case FrontierHeap:
		found, err = r.runHeap()
	default:
		found, err = r.runScan()
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q → %q", ErrUnreachable, source, target)
	}

	return &Result{
		Source:   source,
		Target:   target,
		Distance: r.states.At(t).Distance(),
		Path:     r.path(vertices),
		Settled:  r.settled,
	}, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph      // read-only within a query
	opts    Options          // thresholds
	states  *core.StateTable // finalized flag + tentative distance
	prev    []int            // predecessor index, -1 if none
	source  int
	target  int
	settled int
}

func newRunner(g *core.Graph, opts Options, n, s, t int) *runner {
	r := &runner{
		g:      g,
		opts:   opts,
		states: core.NewStateTable(n),
		prev:   make([]int, n),
		source: s,
		target: t,
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	r.states.At(s).SetDistance(0)

	return r
}

// runScan is the frontier-set variant. The source starts finalized; each
// round relaxes the current station's neighbors into the frontier and then
// finalizes the frontier minimum.
func (r *runner) runScan() (bool, error) {
	var frontier frontierSet
	frontier.init(r.states.Len())

	cur := r.source
	r.finalize(cur)
	for cur != r.target {
		if err := r.relax(cur, frontier.add); err != nil {
			return false, err
		}
		next, ok := frontier.popMin(r.states)
		if !ok {
			return false, nil
		}
		cur = next
		r.finalize(cur)
	}

	return true, nil
}

// runHeap is the priority-queue variant with lazy decrease-key: improved
// distances push a fresh entry and stale entries are skipped when popped.
func (r *runner) runHeap() (bool, error) {
	pq := make(nodePQ, 0, r.states.Len())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{idx: r.source, dist: 0})

	push := func(j int) {
		heap.Push(&pq, &nodeItem{idx: j, dist: r.states.At(j).Distance()})
	}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.idx
		st := r.states.At(u)
		if st.IsMarked() || item.dist != st.Distance() {
			continue
		}
		r.finalize(u)
		if u == r.target {
			return true, nil
		}
		if err := r.relax(u, push); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (r *runner) finalize(i int) {
	r.states.At(i).Mark()
	r.settled++
}

// relax offers dist(u)+w to every unfinalized neighbor of u and hands each
// one whose tentative distance is set to enqueue. Only strict improvements
// move a predecessor link.
func (r *runner) relax(u int, enqueue func(int)) error {
	nbrs, err := r.g.NeighborIndices(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of index %d: %w", u, err)
	}

	du := r.states.At(u).Distance()
	for _, v := range nbrs {
		if v >= r.states.Len() || r.states.At(v).IsMarked() {
			continue
		}
		w, err := r.g.WeightAt(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %d→%d: %w", u, v, err)
		}
		if w >= r.opts.InfEdgeThreshold {
			continue
		}
		if du > core.Infinity-w {
			continue
		}
		nd := du + w
		if nd > r.opts.MaxDistance {
			continue
		}
		if nd < r.states.At(v).Distance() {
			r.states.At(v).SetDistance(nd)
			r.prev[v] = u
			enqueue(v)
		}
	}

	return nil
}

// path walks prev links back from the target.
func (r *runner) path(vertices []*core.Vertex) []*core.Vertex {
	var rev []*core.Vertex
	for i := r.target; i >= 0; i = r.prev[i] {
		rev = append(rev, vertices[i])
		if i == r.source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// frontierSet is a membership-flagged slice of station indices.
type frontierSet struct {
	members []int
	in      []bool
}

func (f *frontierSet) init(n int) {
	f.members = make([]int, 0, n)
	f.in = make([]bool, n)
}

// add inserts i unless it is already present.
func (f *frontierSet) add(i int) {
	if f.in[i] {
		return
	}
	f.in[i] = true
	f.members = append(f.members, i)
}

// popMin removes and returns the member with the smallest tentative
// distance, lowest index on ties.
func (f *frontierSet) popMin(states *core.StateTable) (int, bool) {
	if len(f.members) == 0 {
		return -1, false
	}
	best := 0
	for k := 1; k < len(f.members); k++ {
		a, b := f.members[k], f.members[best]
		da, db := states.At(a).Distance(), states.At(b).Distance()
		if da < db || (da == db && a < b) {
			best = k
		}
	}
	idx := f.members[best]
	last := len(f.members) - 1
	f.members[best] = f.members[last]
	f.members = f.members[:last]
	f.in[idx] = false

	return idx, true
}

// nodeItem represents a station index and the distance it was queued with.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then index.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, lowest index first on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
