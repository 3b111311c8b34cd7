// Package roadmap provides a thread-safe, in-memory road network that plugs
// straight into astar.Search.
//
// A Map stores intersections (ID → planar coordinate) and roads (adjacency
// sets). IDs may be any cmp.Ordered type; Neighbors and Intersections return
// sorted slices so that searches are reproducible run to run.
//
// Configuration Options:
//
//	- WithOneWay()
//	    AddRoad(a, b) creates only a→b. By default roads are two-way.
//
//	- WithLoops()
//	    Permits AddRoad(v, v); otherwise it returns ErrLoopNotAllowed.
//
// Generators:
//
//	Grid(rows, cols, spacing)  rows×cols street grid, IDs r*cols+c
//	Sample(name)               built-in demo maps: "grid", "ring", "ten"
//
// Locking: a single sync.RWMutex guards intersections and roads. Readers
// (Coordinate, Neighbors, …) take the read lock and never block each other.
//
// Example:
//
//	m := roadmap.New[string]()
//	_ = m.AddIntersection("A", 0, 0)
//	_ = m.AddIntersection("B", 1, 0)
//	_ = m.AddRoad("A", "B")
//	path, _ := astar.FindPath[string](m, "A", "B") // [A B]
package roadmap
