// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Map type, construction options and sentinel errors.
// Policy:
//   - One RWMutex guards intersections and roads together; a road never
//     refers to a missing intersection.
//   - Read accessors return copies; callers cannot mutate internal state.

package roadmap

import (
	"cmp"
	"errors"
	"sync"

	"github.com/katalvlaran/routeplan/astar"
)

// Sentinel errors for road map operations.
var (
	// ErrIntersectionNotFound indicates an operation referenced an unknown intersection.
	ErrIntersectionNotFound = errors.New("roadmap: intersection not found")

	// ErrDuplicateIntersection indicates an intersection ID was added twice.
	ErrDuplicateIntersection = errors.New("roadmap: intersection already exists")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("roadmap: coordinate must be finite")

	// ErrLoopNotAllowed indicates a road from an intersection to itself when loops are disabled.
	ErrLoopNotAllowed = errors.New("roadmap: self-loop road not allowed")

	// ErrRoadExists indicates the road was already added.
	ErrRoadExists = errors.New("roadmap: road already exists")

	// ErrBadDimensions indicates a generator received a non-positive size or spacing.
	ErrBadDimensions = errors.New("roadmap: dimensions must be positive")

	// ErrUnknownSample indicates Sample was asked for a name it does not know.
	ErrUnknownSample = errors.New("roadmap: unknown sample map")
)

// Option configures a Map before creation.
type Option func(*config)

type config struct {
	oneWay     bool
	allowLoops bool
}

// WithOneWay makes AddRoad create a single directed road a→b instead of a
// two-way street.
func WithOneWay() Option {
	return func(c *config) { c.oneWay = true }
}

// WithLoops permits roads from an intersection back to itself.
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// Map is an in-memory road network keyed by ordered intersection IDs.
//
// It satisfies astar.RoadMap. Neighbors and Intersections return sorted
// results, so searches over a Map are fully deterministic.
type Map[N cmp.Ordered] struct {
	mu sync.RWMutex

	oneWay     bool
	allowLoops bool

	intersections map[N]astar.Point
	// roads[from][to] = struct{}{}
	roads     map[N]map[N]struct{}
	roadCount int
}

var _ astar.RoadMap[string] = (*Map[string])(nil)

// Stats is a read-only snapshot of a Map.
type Stats struct {
	Intersections int  `json:"intersections"` // number of intersections
	Roads         int  `json:"roads"`         // number of roads as added (a two-way street counts once)
	Isolated      int  `json:"isolated"`      // intersections without any outgoing road
	OneWay        bool `json:"one_way"`       // roads are directed
}

// New creates an empty Map. By default roads are two-way and self-loops are
// rejected.
// Complexity: O(1)
func New[N cmp.Ordered](opts ...Option) *Map[N] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[N]{
		oneWay:        cfg.oneWay,
		allowLoops:    cfg.allowLoops,
		intersections: make(map[N]astar.Point),
		roads:         make(map[N]map[N]struct{}),
	}
}
