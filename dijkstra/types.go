// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on word graphs.
//
// Word-graph weights are adjacency counts (always ≥ 1), so the usual
// non-negativity precondition holds by construction.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for vertices not reachable from Source.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string // The ID of the source vertex
	ReturnPath  bool   // Whether to return the predecessor map
	MaxDistance int64  // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}

// PathStatus classifies the outcome of a shortest-path query.
type PathStatus int

const (
	// PathFound means a path exists; Path and Length are set.
	PathFound PathStatus = iota
	// PathUnreachable means both words exist but no directed path connects them.
	PathUnreachable
	// PathMissing means one or both words are not vertices of the graph.
	PathMissing
)

// String returns a stable lowercase name, used in structured output.
func (s PathStatus) String() string {
	switch s {
	case PathFound:
		return "found"
	case PathUnreachable:
		return "unreachable"
	case PathMissing:
		return "missing"
	default:
		return fmt.Sprintf("PathStatus(%d)", int(s))
	}
}

// MarshalText lets encoders (JSON, YAML) print the status name.
func (s PathStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PathResult is the outcome of one single-pair query.
// Path and Length are meaningful only when Status == PathFound;
// Length is the sum of traversed edge weights, never the hop count.
type PathResult struct {
	From   string     `json:"from"             yaml:"from"`
	To     string     `json:"to"               yaml:"to"`
	Path   []string   `json:"path,omitempty"   yaml:"path,omitempty"`
	Length int64      `json:"length"           yaml:"length"`
	Status PathStatus `json:"status"           yaml:"status"`
}

// String renders the result for display.
func (r PathResult) String() string {
	switch r.Status {
	case PathMissing:
		return "One or both words are not in the graph!"
	case PathUnreachable:
		return fmt.Sprintf("No path from %q to %q!", r.From, r.To)
	default:
		return fmt.Sprintf("The shortest path from %q to %q is:\n%s\nPath length: %d",
			r.From, r.To, strings.Join(r.Path, " -> "), r.Length)
	}
}

// SourceResult aggregates the single-source query: one PathResult per other
// vertex, in vertex enumeration order.
type SourceResult struct {
	From    string       `json:"from"            yaml:"from"`
	Missing bool         `json:"missing"         yaml:"missing"`
	Paths   []PathResult `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// String renders every individual result, newline separated.
func (r SourceResult) String() string {
	if r.Missing {
		return "The word is not in the graph!"
	}
	parts := make([]string, len(r.Paths))
	for i, p := range r.Paths {
		parts[i] = p.String()
	}

	return strings.Join(parts, "\n")
}
