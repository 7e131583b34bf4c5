// File: path.go
// Role: Word-level shortest-path queries on top of Dijkstra.
// Policy:
//   - Absent words and unreachable targets are results (PathMissing,
//     PathUnreachable), not errors. Errors are reserved for a nil graph.
//   - Query words are normalized (trimmed, lowercased) before lookup.
//   - Infinite distances never leave this file.

package dijkstra

import (
	"slices"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// ShortestPath finds the minimum-weight path from → to.
//
// Behavior highlights:
//   - from == to yields the singleton path [from] with Length 0.
//   - Among equal-weight paths the result is deterministic (see Dijkstra tie-break).
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E).
func ShortestPath(g *core.Graph, from, to string) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	from, to = tokenize.Normalize(from), tokenize.Normalize(to)
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return PathResult{From: from, To: to, Status: PathMissing}, nil
	}

	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return PathResult{}, err
	}

	return resolve(from, to, dist, prev), nil
}

// ShortestPathsFrom answers ShortestPath(from, t) for every vertex t ≠ from,
// in vertex enumeration order, unreachable targets included.
//
// One Dijkstra run serves every target: the per-target answers are
// identical to independent ShortestPath calls because the run is
// deterministic for a fixed source.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity:
//   - Time O((V + E) log V + V·L) where L is the longest reconstructed path.
func ShortestPathsFrom(g *core.Graph, from string) (SourceResult, error) {
	if g == nil {
		return SourceResult{}, ErrNilGraph
	}
	from = tokenize.Normalize(from)
	if !g.HasVertex(from) {
		return SourceResult{From: from, Missing: true}, nil
	}

	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return SourceResult{}, err
	}

	vertices := g.Vertices()
	out := SourceResult{From: from, Paths: make([]PathResult, 0, len(vertices))}
	for _, to := range vertices {
		if to == from {
			continue
		}
		out.Paths = append(out.Paths, resolve(from, to, dist, prev))
	}

	return out, nil
}

// resolve turns Dijkstra output into a PathResult by walking predecessor
// links from to back to from and reversing.
func resolve(from, to string, dist map[string]int64, prev map[string]string) PathResult {
	res := PathResult{From: from, To: to}
	d, ok := dist[to]
	if !ok || d == Unreachable {
		res.Status = PathUnreachable
		return res
	}

	path := []string{to}
	for at := to; at != from; {
		at = prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)

	res.Path = path
	res.Length = d
	res.Status = PathFound

	return res
}
