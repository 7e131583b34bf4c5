// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order (first appearance in the corpus).
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject frozen graphs (ErrGraphFrozen).
//   - Stage 3: Register the vertex and an empty outgoing bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrGraphFrozen: if Freeze has been called, even for an existing vertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent. Caller holds the write lock.
func (g *Graph) addVertexLocked(id string) *outEdges {
	if out, ok := g.adjacency[id]; ok {
		return out
	}
	out := &outEdges{weight: make(map[string]int64)}
	g.adjacency[id] = out
	g.order = append(g.order, id)

	return out
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
