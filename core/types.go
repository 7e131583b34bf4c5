// Package core defines the central word Graph and Edge types and provides
// the primitives for building and querying a weighted directed word graph.
//
// The Graph is guarded by a single sync.RWMutex, so concurrent readers are
// safe; in practice a graph is built once by package builder, frozen, and
// then only read by the query packages.
//
// This file declares Edge, Neighbor, GraphStats, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - edge weight is zero or negative.
//	ErrGraphFrozen    - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-positive weight was passed to AddEdge.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrGraphFrozen indicates a mutation was attempted on a frozen graph.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// Edge is a directed, weighted connection From→To.
//
// Weight counts how many times To immediately followed From in the corpus.
type Edge struct {
	// From is the source vertex ID.
	From string `json:"from" yaml:"from"`

	// To is the destination vertex ID.
	To string `json:"to" yaml:"to"`

	// Weight is the accumulated adjacency count (always ≥ 1).
	Weight int64 `json:"weight" yaml:"weight"`
}

// Neighbor is one outgoing adjacency of a vertex: the target ID and the
// weight of the edge leading to it.
type Neighbor struct {
	ID     string `json:"id"     yaml:"id"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	VertexCount int   // number of distinct words
	EdgeCount   int   // number of distinct directed pairs
	TotalWeight int64 // sum of all edge weights (= adjacent pairs in corpus)
	DeadEnds    int   // vertices without outgoing edges
	Frozen      bool  // whether the graph rejects further mutation
}

// outEdges stores the outgoing adjacency of one vertex.
// order keeps discovery order; weight maps target → accumulated weight.
type outEdges struct {
	order  []string
	weight map[string]int64
}

// Graph is the in-memory word adjacency graph.
//
// Every vertex owns an outEdges bucket (possibly empty), so any vertex that
// appears as a neighbor is also a key of adjacency.
// mu guards all fields.
type Graph struct {
	mu sync.RWMutex

	frozen bool // set once by Freeze; never cleared

	// Storage
	order     []string             // vertex IDs in insertion order
	adjacency map[string]*outEdges // vertex ID → outgoing edges
	edgeCount int                  // number of distinct (from,to) pairs
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]*outEdges),
	}
}
