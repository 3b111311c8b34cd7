package astar

import (
	"fmt"
	"math"
)

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// EdgeCost returns the cost of travelling the road a→b, which is the
// straight-line distance between the two intersections.
//
// The caller guarantees that both nodes are known and that b is a neighbor
// of a; unknown nodes are treated as sitting at the origin.
func EdgeCost[N comparable](m RoadMap[N], a, b N) float64 {
	pa, _ := m.Coordinate(a)
	pb, _ := m.Coordinate(b)

	return Distance(pa, pb)
}

// Heuristic estimates the remaining cost from node to goal.
//
// It is the same Euclidean metric EdgeCost uses, so it never overestimates
// and satisfies h(u) <= cost(u,v) + h(v) for every road u→v.
func Heuristic[N comparable](m RoadMap[N], node, goal N) float64 {
	return EdgeCost(m, node, goal)
}

// PathCost sums the edge costs along path, checking that every node is known
// and every step follows a road. An empty or single-node path costs 0.
func PathCost[N comparable](m RoadMap[N], path []N) (float64, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	var total float64
	for i, node := range path {
		if _, ok := m.Coordinate(node); !ok {
			return 0, &NodeError[N]{Role: "path", Node: node}
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if !connected(m, prev, node) {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotAnEdge, prev, node)
		}
		total += EdgeCost(m, prev, node)
	}

	return total, nil
}

// connected reports whether b appears among the neighbors of a.
func connected[N comparable](m RoadMap[N], a, b N) bool {
	for _, n := range m.Neighbors(a) {
		if n == b {
			return true
		}
	}

	return false
}
