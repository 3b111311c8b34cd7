// Package astar defines core types, sentinel errors and configuration options
// for the A* route search over planar road maps.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilMap indicates that a nil RoadMap was passed to Search.
	ErrNilMap = errors.New("astar: road map is nil")

	// ErrInvalidNode indicates that the start, the goal or a reported neighbor
	// has no coordinate in the road map.
	ErrInvalidNode = errors.New("astar: node not present in road map")

	// ErrNoPathFound indicates that the frontier was exhausted before the goal
	// was extracted. This is the normal outcome for disconnected maps.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrBrokenChain indicates that the predecessor chain does not lead back to
	// the start. It signals a bookkeeping bug and must never occur in practice.
	ErrBrokenChain = errors.New("astar: broken predecessor chain")

	// ErrExpansionLimit indicates that MaxExpansions was reached before the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNotAnEdge indicates that two consecutive path nodes are not connected.
	ErrNotAnEdge = errors.New("astar: consecutive nodes are not connected")
)

// Point is the planar position of an intersection.
type Point struct {
	X float64
	Y float64
}

// RoadMap is the read-only view of a road network consumed by the search.
//
// Coordinate reports ok == false for nodes unknown to the map; the search uses
// that to detect invalid identifiers. Implementations must not be mutated
// while a search is running over them.
type RoadMap[N comparable] interface {
	// Neighbors returns the nodes reachable from node by a single road.
	Neighbors(node N) []N

	// Coordinate returns the position of node.
	Coordinate(node N) (Point, bool)
}

// NodeError wraps ErrInvalidNode with the offending node and its role
// ("start", "goal" or "neighbor").
type NodeError[N comparable] struct {
	Role string
	Node N
}

// Error implements the error interface.
func (e *NodeError[N]) Error() string {
	return fmt.Sprintf("%v: %s %v", ErrInvalidNode, e.Role, e.Node)
}

// Unwrap lets errors.Is(err, ErrInvalidNode) match.
func (e *NodeError[N]) Unwrap() error { return ErrInvalidNode }

// TiePolicy decides what happens when a node is rediscovered at exactly its
// current best cost while it is still waiting on the frontier.
type TiePolicy int

const (
	// TieLastFound overwrites the predecessor with the latest equal-cost
	// discoverer and re-enqueues the node.
	TieLastFound TiePolicy = iota

	// TieFirstFound keeps the first predecessor that reached the cost.
	TieFirstFound
)

// String returns the policy name as used on the command line.
func (p TiePolicy) String() string {
	switch p {
	case TieLastFound:
		return "last"
	case TieFirstFound:
		return "first"
	default:
		return fmt.Sprintf("TiePolicy(%d)", int(p))
	}
}

// ParseTiePolicy converts "last" or "first" into a TiePolicy.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch s {
	case "", "last":
		return TieLastFound, nil
	case "first":
		return TieFirstFound, nil
	default:
		return 0, fmt.Errorf("%w: unknown tie policy %q", ErrOptionViolation, s)
	}
}

// Options configures a single search.
//
// TiePolicy     - equal-cost rediscovery handling (default TieLastFound).
// MaxExpansions - cap on expanded nodes; 0 disables the cap.
// MaxCost       - children whose estimated total exceeds it are pruned.
//
//	Default is +Inf (no horizon).
//
// OnExpand      - called with each node right before its neighbors are relaxed.
// OnEnqueue     - called with each node pushed onto the frontier and its f value.
type Options[N comparable] struct {
	TiePolicy     TiePolicy
	MaxExpansions int
	MaxCost       float64
	OnExpand      func(node N, g float64)
	OnEnqueue     func(node N, f float64)

	// err records the first invalid option; Search surfaces it.
	err error
}

// Option represents a functional option for configuring Search.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with no caps, the TieLastFound policy and
// no-op hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		TiePolicy:     TieLastFound,
		MaxExpansions: 0,
		MaxCost:       math.Inf(1),
		OnExpand:      func(N, float64) {},
		OnEnqueue:     func(N, float64) {},
	}
}

// WithTiePolicy selects how equal-cost rediscoveries are handled.
func WithTiePolicy[N comparable](p TiePolicy) Option[N] {
	return func(o *Options[N]) {
		if p != TieLastFound && p != TieFirstFound {
			o.setErr(fmt.Errorf("%w: unknown tie policy %d", ErrOptionViolation, int(p)))
			return
		}
		o.TiePolicy = p
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[N comparable](n int) Option[N] {
	return func(o *Options[N]) {
		if n < 0 {
			o.setErr(fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxCost prunes every child whose estimated total cost exceeds c.
// A goal beyond the horizon yields ErrNoPathFound.
func WithMaxCost[N comparable](c float64) Option[N] {
	return func(o *Options[N]) {
		if c < 0 || math.IsNaN(c) {
			o.setErr(fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, c))
			return
		}
		o.MaxCost = c
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand[N comparable](fn func(node N, g float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run for every frontier insertion.
func WithOnEnqueue[N comparable](fn func(node N, f float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

func (o *Options[N]) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result holds the outcome of a successful search:
//   - Path: nodes from start to goal inclusive.
//   - Cost: summed edge cost along Path.
//   - Expanded: number of nodes whose neighbors were relaxed.
//   - Enqueued: number of frontier insertions, duplicates included.
type Result[N comparable] struct {
	Path     []N
	Cost     float64
	Expanded int
	Enqueued int
}
