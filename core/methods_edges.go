// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() lists sources in vertex insertion order and, per source,
//     targets in discovery order.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

// AddEdge records weight more observations of the directed pair from→to.
//
// Unlike a multigraph, repeated calls for the same pair never create a
// parallel edge: the existing edge's weight is incremented instead.
// Missing endpoints are created. Self-loops are allowed ("the the").
//
// Steps:
//  1. Validate IDs and weight.
//  2. Lock, reject frozen graphs.
//  3. Ensure both endpoints exist (from first, so insertion order follows the corpus).
//  4. Create the edge on first sight, otherwise accumulate.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight <= 0 {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}

	out := g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, seen := out.weight[to]; !seen {
		out.order = append(out.order, to)
		g.edgeCount++
	}
	out.weight[to] += weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[from]
	if !ok {
		return 0, false
	}
	w, ok := out.weight[to]

	return w, ok
}

// Edges returns every edge, grouped by source in vertex insertion order and
// by target in discovery order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, g.edgeCount)
	for _, from := range g.order {
		out := g.adjacency[from]
		for _, to := range out.order {
			edges = append(edges, Edge{From: from, To: to, Weight: out.weight[to]})
		}
	}

	return edges
}

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
