package astar

import (
	"container/heap"
	"fmt"
)

// FindPath returns the cheapest route from start to goal over m.
//
// It is a thin wrapper around Search for callers that only need the nodes.
// Errors: ErrNilMap, ErrInvalidNode (as *NodeError), ErrNoPathFound,
// ErrExpansionLimit, ErrOptionViolation and, on a bookkeeping bug,
// ErrBrokenChain.
func FindPath[N comparable](m RoadMap[N], start, goal N, opts ...Option[N]) ([]N, error) {
	res, err := Search(m, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs A* from start to goal, using EdgeCost for road costs and
// Heuristic for the remaining-cost estimate.
//
// Preconditions and validation (in order):
//  1. Every Option must be valid (ErrOptionViolation).
//  2. m must be non-nil (ErrNilMap).
//  3. start and goal must have coordinates in m (ErrInvalidNode).
//
// All search state (gScore, predecessors, frontier) is owned by the call, so
// concurrent searches over one unchanging map are safe.
//
// Complexity:
//   - Time:  O(E log E) in the worst case, E = roads explored.
//   - Space: O(V + E) for the score maps and the lazily updated heap.
func Search[N comparable](m RoadMap[N], start, goal N, opts ...Option[N]) (*Result[N], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the map and both endpoints before touching any state.
	if m == nil {
		return nil, ErrNilMap
	}
	startPt, ok := m.Coordinate(start)
	if !ok {
		return nil, &NodeError[N]{Role: "start", Node: start}
	}
	goalPt, ok := m.Coordinate(goal)
	if !ok {
		return nil, &NodeError[N]{Role: "goal", Node: goal}
	}

	// 3) Seed the runner with the start node and run the main loop.
	r := &runner[N]{
		m:        m,
		options:  cfg,
		start:    start,
		goal:     goal,
		goalPt:   goalPt,
		gScore:   map[N]float64{start: 0},
		prev:     make(map[N]N),
		expanded: make(map[N]float64),
	}
	heap.Init(&r.pq)
	r.push(start, 0, Distance(startPt, goalPt))

	return r.process()
}

// runner holds the mutable state of a single search.
type runner[N comparable] struct {
	m       RoadMap[N]
	options Options[N]
	start   N
	goal    N
	goalPt  Point

	gScore   map[N]float64 // best known cost from start
	prev     map[N]N       // predecessor achieving gScore
	expanded map[N]float64 // g at which each node's neighbors were relaxed

	pq  frontier[N]
	seq uint64
	res Result[N]
}

// process pops entries until the goal is extracted or the frontier is empty.
func (r *runner[N]) process() (*Result[N], error) {
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest estimated total cost.
		item := heap.Pop(&r.pq).(*entry[N])
		cur := item.node

		// 2) Skip stale duplicates: a better cost was recorded after this push,
		//    or the node was already expanded at this cost or lower.
		if item.g > r.gScore[cur] {
			continue
		}
		if g, done := r.expanded[cur]; done && g <= item.g {
			continue
		}

		// 3) Goal reached: rebuild the route from the predecessor map.
		if cur == r.goal {
			path, err := Reconstruct(r.prev, r.start, r.goal)
			if err != nil {
				return nil, err
			}
			r.res.Path = path
			r.res.Cost = item.g
			out := r.res

			return &out, nil
		}

		// 4) Enforce the expansion cap before doing more work.
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.res.Expanded)
		}

		// 5) Expand.
		r.expanded[cur] = item.g
		r.res.Expanded++
		r.options.OnExpand(cur, item.g)
		if err := r.relax(cur, item.g); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPathFound
}

// relax examines every road leaving cur and records improved or tied costs.
//
// A child whose recorded gScore is strictly lower than the tentative cost is
// skipped. An equal cost counts as a rediscovery: it is ignored for nodes that
// were already expanded, and otherwise handled per the TiePolicy.
func (r *runner[N]) relax(cur N, g float64) error {
	curPt, _ := r.m.Coordinate(cur)

	for _, child := range r.m.Neighbors(cur) {
		childPt, ok := r.m.Coordinate(child)
		if !ok {
			return &NodeError[N]{Role: "neighbor", Node: child}
		}
		tentative := g + Distance(curPt, childPt)

		if best, seen := r.gScore[child]; seen {
			if best < tentative {
				continue
			}
			if best == tentative {
				if _, done := r.expanded[child]; done {
					continue
				}
				if r.options.TiePolicy == TieFirstFound {
					continue
				}
			}
		}

		f := tentative + Distance(childPt, r.goalPt)
		if f > r.options.MaxCost {
			continue
		}

		// gScore and prev are always updated together.
		r.gScore[child] = tentative
		r.prev[child] = cur
		r.push(child, tentative, f)
	}

	return nil
}

func (r *runner[N]) push(node N, g, f float64) {
	r.seq++
	heap.Push(&r.pq, &entry[N]{node: node, g: g, f: f, seq: r.seq})
	r.res.Enqueued++
	r.options.OnEnqueue(node, f)
}
