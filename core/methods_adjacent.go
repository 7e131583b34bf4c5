// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, OutDegree).
// Determinism:
//   - Neighbors() and NeighborIDs() follow edge discovery order.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

// Neighbors returns the outgoing adjacencies of id in discovery order.
//
// Returns:
//   - []Neighbor: target IDs with edge weights; empty (non-nil) for dead ends.
//   - error: nil on success; otherwise a sentinel error.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := make([]Neighbor, 0, len(out.order))
	for _, to := range out.order {
		nbrs = append(nbrs, Neighbor{ID: to, Weight: out.weight[to]})
	}

	return nbrs, nil
}

// NeighborIDs returns the unique target IDs of id in discovery order.
// Errors and complexity match Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, len(out.order))
	copy(ids, out.order)

	return ids, nil
}

// OutDegree returns the number of distinct successors of id.
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(out.order), nil
}
