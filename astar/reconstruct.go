package astar

import "fmt"

// Reconstruct walks prev from goal back to start and returns the route in
// start→goal order. prev[v] == u means the best known route to v arrives
// from u; start itself needs no entry.
//
// It fails with ErrBrokenChain when a node before start has no predecessor,
// or when the chain revisits a node.
// Complexity: O(len(path)).
func Reconstruct[N comparable](prev map[N]N, start, goal N) ([]N, error) {
	path := []N{goal}
	// A cycle-free chain holds at most every key of prev plus start.
	limit := len(prev) + 1

	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrBrokenChain, cur)
		}
		path = append(path, p)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, p)
		}
		cur = p
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
