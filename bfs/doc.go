// Package bfs provides breadth-first iteration over a core.Graph of stations,
// returning hop levels, parent links, and visit order.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (start first, then level 1, level 2, ...)
//   - Level: map from station name → hops from start
//   - Parent: map from station name → its predecessor in the BFS tree
//   - OnVisit hook runs once per reached station and may abort with an error.
//   - Individual edges can be pruned with WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Each level is expanded in the order its stations were discovered, and
//	each station's neighbors are walked in graph insertion order. Two runs
//	over the same graph return the same Order.
//
// Scratch state
//
//	Visited flags and levels are kept in a core.StateTable allocated per call,
//	so concurrent traversals of one graph never interfere and the graph is
//	left untouched.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(V²)  (every row of the adjacency matrix is read once)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Central",
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(v *core.Vertex, level int) error {
//	        fmt.Println(level, v)
//	        return nil
//	    }),
//	)
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation...
//	}
//	path, _ := res.PathTo("Harbour")
//
// Errors
//
//   - ErrGraphNil:            nil graph pointer.
//   - ErrStartVertexNotFound: start station missing (matches core.ErrVertexNotFound).
//   - ErrOptionViolation:     invalid option (e.g. negative depth).
//   - Hook or context errors are returned wrapped.
package bfs
