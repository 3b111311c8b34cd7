package roadmap

import (
	"fmt"
	"math"
	"slices"
)

// sampleBuilders holds the built-in demo maps served by the CLI and HTTP server.
var sampleBuilders = map[string]func() (*Map[int], error){
	"ten":  buildTen,
	"ring": buildRing,
	"grid": func() (*Map[int], error) { return Grid(5, 5, 1) },
}

// SampleNames returns the names accepted by Sample, sorted.
func SampleNames() []string {
	names := make([]string, 0, len(sampleBuilders))
	for name := range sampleBuilders {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Sample builds a fresh copy of a named demo map:
//   - "ten":  ten intersections with thirteen two-way roads.
//   - "ring": eight intersections on a unit circle plus isolated intersection 8.
//   - "grid": a 5×5 grid with unit spacing, IDs 0..24.
func Sample(name string) (*Map[int], error) {
	build, ok := sampleBuilders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}

	return build()
}

func buildTen() (*Map[int], error) {
	points := [][2]float64{
		{0.0, 0.0}, {1.0, 0.5}, {2.0, 0.0}, {0.5, 1.5}, {1.5, 1.5},
		{3.0, 1.0}, {0.0, 3.0}, {2.0, 2.5}, {3.0, 3.0}, {4.0, 2.0},
	}
	roads := [][2]int{
		{0, 1}, {1, 2}, {0, 3}, {1, 4}, {3, 4}, {2, 5}, {4, 5},
		{4, 7}, {3, 6}, {6, 7}, {7, 8}, {5, 9}, {8, 9},
	}

	return build(points, roads)
}

func buildRing() (*Map[int], error) {
	const n = 8
	points := make([][2]float64, 0, n+1)
	roads := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		points = append(points, [2]float64{math.Cos(a), math.Sin(a)})
		roads = append(roads, [2]int{i, (i + 1) % n})
	}
	// unreachable
	points = append(points, [2]float64{5, 5})

	return build(points, roads)
}

func build(points [][2]float64, roads [][2]int) (*Map[int], error) {
	m := New[int]()
	for id, p := range points {
		if err := m.AddIntersection(id, p[0], p[1]); err != nil {
			return nil, err
		}
	}
	for _, r := range roads {
		if err := m.AddRoad(r[0], r[1]); err != nil {
			return nil, err
		}
	}

	return m, nil
}
