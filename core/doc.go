// Package core provides the in-memory word adjacency Graph used by every
// query package in wordgraph.
//
// The Graph G = (V,E) is directed and weighted:
//
//   - V is the set of distinct lowercase words of a corpus.
//   - E holds an edge a→b whenever b immediately followed a; its Weight is
//     the number of times that happened.
//   - Repeated observations accumulate on one edge (no parallel edges).
//   - Self-loops are legal ("the the" yields the→the).
//   - Every vertex owns an outgoing bucket, possibly empty, so a word that
//     only ever appears as a successor is still a vertex.
//
// Enumeration order is deterministic:
//
//	Vertices()    – insertion order (first appearance in the corpus)
//	Neighbors(v)  – edge discovery order
//	Edges()       – sources in insertion order, targets in discovery order
//
// Lifecycle:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("the", "cat", 1) // creates both vertices
//	_ = g.AddEdge("the", "cat", 1) // weight is now 2
//	g.Freeze()                     // further mutation → ErrGraphFrozen
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	AddEdge(from, to string, weight int64) error  // O(1), accumulates
//	HasVertex(id string) bool                     // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Weight(from, to string) (int64, bool)         // O(1)
//	Neighbors(id string) ([]Neighbor, error)      // O(d)
//	NeighborIDs(id string) ([]string, error)      // O(d)
//	OutDegree(id string) (int, error)             // O(1)
//	Vertices() []string                           // O(V)
//	Edges() []Edge                                // O(V+E)
//	VertexCount(), EdgeCount() int                // O(1)
//	Stats() *GraphStats                           // O(V+E)
//	Freeze(), Frozen()                            // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrBadWeight      – weight ≤ 0
//	ErrGraphFrozen    – mutation after Freeze
package core
