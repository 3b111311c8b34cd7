package roadmap

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/routeplan/astar"
)

// AddIntersection registers id at position (x, y).
//
// Errors:
//   - ErrBadCoordinate if x or y is NaN or infinite.
//   - ErrDuplicateIntersection if id already exists.
//
// Complexity: O(1)
func (m *Map[N]) AddIntersection(id N, x, y float64) error {
	if !finite(x) || !finite(y) {
		return fmt.Errorf("%w: %v at (%v, %v)", ErrBadCoordinate, id, x, y)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.intersections[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateIntersection, id)
	}
	m.intersections[id] = astar.Point{X: x, Y: y}

	return nil
}

// AddRoad connects a to b. Unless the Map was built WithOneWay, the road is
// usable in both directions.
//
// Errors:
//   - ErrIntersectionNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if a == b and loops are disabled.
//   - ErrRoadExists if the road a→b is already present.
//
// Complexity: O(1)
func (m *Map[N]) AddRoad(a, b N) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 1) Both endpoints must exist.
	if _, ok := m.intersections[a]; !ok {
		return fmt.Errorf("%w: %v", ErrIntersectionNotFound, a)
	}
	if _, ok := m.intersections[b]; !ok {
		return fmt.Errorf("%w: %v", ErrIntersectionNotFound, b)
	}

	// 2) Policy checks.
	if a == b && !m.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}
	if _, ok := m.roads[a][b]; ok {
		return fmt.Errorf("%w: %v→%v", ErrRoadExists, a, b)
	}

	// 3) Link, mirroring two-way streets.
	m.link(a, b)
	if !m.oneWay {
		m.link(b, a)
	}
	m.roadCount++

	return nil
}

// link records from→to; callers hold mu.
func (m *Map[N]) link(from, to N) {
	out, ok := m.roads[from]
	if !ok {
		out = make(map[N]struct{})
		m.roads[from] = out
	}
	out[to] = struct{}{}
}

// HasIntersection reports whether id is known.
func (m *Map[N]) HasIntersection(id N) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.intersections[id]

	return ok
}

// HasRoad reports whether a road a→b exists.
func (m *Map[N]) HasRoad(a, b N) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.roads[a][b]

	return ok
}

// Coordinate returns the position of id; ok is false for unknown IDs.
func (m *Map[N]) Coordinate(id N) (astar.Point, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.intersections[id]

	return p, ok
}

// Neighbors returns the intersections reachable from id by one road, sorted
// ascending. Unknown IDs yield nil.
// Complexity: O(d log d), d = out-degree of id.
func (m *Map[N]) Neighbors(id N) []N {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := m.roads[id]
	if len(out) == 0 {
		return nil
	}
	ids := make([]N, 0, len(out))
	for to := range out {
		ids = append(ids, to)
	}
	slices.Sort(ids)

	return ids
}

// Intersections returns every intersection ID in ascending order.
func (m *Map[N]) Intersections() []N {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]N, 0, len(m.intersections))
	for id := range m.intersections {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Len returns the number of intersections.
func (m *Map[N]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.intersections)
}

// RoadCount returns the number of roads added; a two-way street counts once.
func (m *Map[N]) RoadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.roadCount
}

// OneWay reports whether roads are directed.
func (m *Map[N]) OneWay() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.oneWay
}

// Stats returns a snapshot of sizes and flags.
// Complexity: O(V)
func (m *Map[N]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	isolated := 0
	for id := range m.intersections {
		if len(m.roads[id]) == 0 {
			isolated++
		}
	}

	return Stats{
		Intersections: len(m.intersections),
		Roads:         m.roadCount,
		Isolated:      isolated,
		OneWay:        m.oneWay,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
