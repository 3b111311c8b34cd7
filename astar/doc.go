// Package astar finds the cheapest route between two intersections of a planar
// road map using A* best-first search with a straight-line heuristic.
//
// Overview:
//
//   - Road costs are Euclidean distances between intersection coordinates.
//   - The heuristic is the Euclidean distance to the goal. Because it is the
//     same metric the road costs are built from, it is admissible and
//     consistent, and every returned route is optimal.
//   - The frontier is a call-scoped min-heap with lazy decrease-key: improved
//     costs are pushed as new entries, stale ones are skipped when popped.
//
// The map is consumed through two read-only capabilities only:
//
//	type RoadMap[N comparable] interface {
//	    Neighbors(node N) []N
//	    Coordinate(node N) (Point, bool)
//	}
//
// Any comparable type can identify a node. roadmap.Map is a ready-made
// implementation, but a plain struct around two maps works just as well.
//
// Tie handling:
//
//   - TieLastFound (default): when a node still on the frontier is reached
//     again at exactly its best cost, the latest discoverer becomes its
//     predecessor and the node is re-enqueued.
//   - TieFirstFound: the first discoverer is kept. Prefer it when routes on
//     tie-heavy maps (grids) must not depend on neighbor order.
//
// Frontier ties on estimated total cost are broken by insertion order, so
// repeated calls on an unchanged map return identical routes.
//
// Error handling (sentinel errors):
//
//   - ErrNilMap:          nil RoadMap.
//   - ErrInvalidNode:     start, goal or a reported neighbor has no coordinate;
//     returned as *NodeError, match with errors.Is.
//   - ErrNoPathFound:     the goal is unreachable (or beyond WithMaxCost).
//   - ErrExpansionLimit:  WithMaxExpansions was exhausted.
//   - ErrOptionViolation: an Option received an invalid argument.
//   - ErrBrokenChain:     internal bookkeeping failure during reconstruction.
//
// Example usage:
//
//	path, err := astar.FindPath[int](m, 0, 9)
//	if errors.Is(err, astar.ErrNoPathFound) {
//	    // disconnected
//	}
//
// Thread safety:
//
//   - Search owns all of its state; concurrent searches over the same map are
//     safe as long as nobody mutates the map meanwhile.
package astar
