// Package dijkstra computes the shortest travel time between two stations of
// a core.Graph.
//
// Overview:
//
//   - Edge weights are travel times (≥ 1, enforced by core), so every
//     finalized distance is exact.
//   - A query stops as soon as the target is finalized; it does not compute
//     the full distance table.
//   - Two frontier strategies give identical distances and paths:
//     FrontierScan keeps a plain set and scans it (good for the small,
//     dense networks this package is aimed at); FrontierHeap keeps a
//     lazy decrease-key min-heap for larger sparse inputs.
//   - Ties between equal tentative distances are broken by the lower graph
//     index, so repeated runs always pick the same path.
//
// Key features:
//
//   - ShortestPath: distance only.
//   - Route: distance plus the station sequence and a Settled count.
//   - PathFinder: bind once, query many times; safe for concurrent use since
//     every query allocates its own core.StateTable.
//   - MaxDistance: treat anything farther than a cap as unreachable.
//   - InfEdgeThreshold: treat heavy edges as closed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source or target missing; also matches core.ErrVertexNotFound.
//   - ErrUnreachable:    no path within the configured limits.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option constructors.
//
// Example:
//
//	pf, err := dijkstra.NewPathFinder(g, dijkstra.WithFrontier(dijkstra.FrontierHeap))
//	if err != nil {
//	    return err
//	}
//	res, err := pf.Route("Central", "Harbour")
//	switch {
//	case errors.Is(err, dijkstra.ErrUnreachable):
//	    fmt.Println("no connection")
//	case err != nil:
//	    return err
//	default:
//	    fmt.Println(res.Distance, res.Names())
//	}
package dijkstra
