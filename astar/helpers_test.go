package astar_test

import (
	"math"

	"github.com/brianvoe/gofakeit"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/roadmap"
)

// plainMap is the smallest possible RoadMap: two maps and nothing else.
// It proves the search depends on the interface only.
type plainMap struct {
	coords map[string]astar.Point
	roads  map[string][]string
}

func (p plainMap) Neighbors(n string) []string { return p.roads[n] }

func (p plainMap) Coordinate(n string) (astar.Point, bool) {
	c, ok := p.coords[n]

	return c, ok
}

// lineMap builds A(0,0)-B(1,0)-C(2,0) plus the isolated D(5,5).
func lineMap() *roadmap.Map[string] {
	m := roadmap.New[string]()
	_ = m.AddIntersection("A", 0, 0)
	_ = m.AddIntersection("B", 1, 0)
	_ = m.AddIntersection("C", 2, 0)
	_ = m.AddIntersection("D", 5, 5)
	_ = m.AddRoad("A", "B")
	_ = m.AddRoad("B", "C")

	return m
}

// diamondMap builds two equally long routes A→B→D and A→C→D.
//
//	  B
//	 / \
//	A   D
//	 \ /
//	  C
func diamondMap() *roadmap.Map[string] {
	m := roadmap.New[string]()
	_ = m.AddIntersection("A", 0, 0)
	_ = m.AddIntersection("B", 1, 1)
	_ = m.AddIntersection("C", 1, -1)
	_ = m.AddIntersection("D", 2, 0)
	_ = m.AddRoad("A", "B")
	_ = m.AddRoad("A", "C")
	_ = m.AddRoad("B", "D")
	_ = m.AddRoad("C", "D")

	return m
}

// randomMap builds a reproducible map of n intersections with integer
// coordinates in [0,1000] and up to 2n random two-way roads.
func randomMap(seed int64, n int) *roadmap.Map[int] {
	gofakeit.Seed(seed)

	m := roadmap.New[int]()
	for i := 0; i < n; i++ {
		_ = m.AddIntersection(i, float64(gofakeit.Number(0, 1000)), float64(gofakeit.Number(0, 1000)))
	}
	for i := 0; i < 2*n; i++ {
		a := gofakeit.Number(0, n-1)
		b := gofakeit.Number(0, n-1)
		if a == b || m.HasRoad(a, b) {
			continue
		}
		_ = m.AddRoad(a, b)
	}

	return m
}

// bruteForce runs an O(V²) Dijkstra without heuristic, heap or tie policy,
// returning the optimal cost (or +Inf when unreachable).
func bruteForce(m *roadmap.Map[int], start, goal int) float64 {
	dist := make(map[int]float64)
	done := make(map[int]bool)
	for _, id := range m.Intersections() {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	for {
		u, best := -1, math.Inf(1)
		for id, d := range dist {
			if !done[id] && d < best {
				u, best = id, d
			}
		}
		if u < 0 {
			return dist[goal]
		}
		done[u] = true
		for _, v := range m.Neighbors(u) {
			if nd := best + astar.EdgeCost[int](m, u, v); nd < dist[v] {
				dist[v] = nd
			}
		}
	}
}
