// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Lifecycle switch (Freeze) and read-only snapshots (Stats).
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity.

package core

// Freeze marks the graph read-only. Subsequent AddVertex/AddEdge calls
// return ErrGraphFrozen. Freeze is idempotent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats produces a deterministic snapshot of graph sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan every outgoing bucket once, summing weights and counting dead ends.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
		Frozen:      g.frozen,
	}
	for _, out := range g.adjacency {
		if len(out.order) == 0 {
			stats.DeadEnds++
		}
		for _, w := range out.weight {
			stats.TotalWeight += w
		}
	}

	return &stats
}
