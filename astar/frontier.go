package astar

// entry is one frontier record. Several entries may exist for the same node;
// only the one whose g matches the node's best gScore is meaningful.
type entry[N comparable] struct {
	node N
	g    float64 // cost from start when the entry was pushed
	f    float64 // g + heuristic
	seq  uint64  // insertion order, breaks f ties first-in first-out
}

// frontier is a min-heap of *entry ordered by f, then by seq.
// It uses the lazy decrease-key approach: improved costs are pushed as new
// entries and outdated ones are skipped when popped.
type frontier[N comparable] []*entry[N]

// Len returns the number of entries in the heap.
func (pq frontier[N]) Len() int { return len(pq) }

// Less orders by estimated total cost, falling back to insertion order.
func (pq frontier[N]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries in the heap.
func (pq frontier[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *entry[N].
func (pq *frontier[N]) Push(x any) { *pq = append(*pq, x.(*entry[N])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
