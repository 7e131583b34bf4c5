// Package walk performs randomized traversals of a word graph.
//
// A walk starts at a uniformly drawn vertex (or WithStart), emits it, and
// repeatedly crosses a uniformly drawn outgoing edge. It ends when:
//
//   - the current vertex is a dead end (no outgoing edges);
//   - the drawn edge was already crossed during this walk (the edge is the
//     trigger, revisiting a vertex through a fresh edge is fine);
//   - the WithContinue hook returns false.
//
// Each edge is crossed at most once, so a walk on a graph with E edges emits
// at most E+1 vertices.
package walk

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// stopDirective is the interactive word that cancels a walk.
const stopDirective = "stop"

// IsStopDirective reports whether an interactive input line asks the walk
// to stop ("stop", any case, surrounding whitespace ignored).
func IsStopDirective(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), stopDirective)
}

// Walk runs one random walk over g.
//
// Returns:
//   - Result with StopEmptyGraph (and no path) when g has no vertices.
//   - Otherwise the emitted path, crossed steps and the stop reason.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if WithStart names an absent word.
//
// Complexity: O(E) steps, each O(d) for the neighbor snapshot.
func Walk(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := newOptions(opts...)

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return Result{Reason: StopEmptyGraph}, nil
	}

	cur := vertices[o.rng.Intn(len(vertices))]
	if o.start != "" {
		cur = tokenize.Normalize(o.start)
		if !g.HasVertex(cur) {
			return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, cur)
		}
	}

	var res Result
	crossed := make(map[[2]string]struct{})
	for {
		res.Path = append(res.Path, cur)

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return Result{}, fmt.Errorf("walk: neighbors of %q: %w", cur, err)
		}
		if len(nbrs) == 0 {
			res.Reason = StopDeadEnd
			return res, nil
		}

		next := nbrs[o.rng.Intn(len(nbrs))]
		edge := [2]string{cur, next.ID}
		if _, seen := crossed[edge]; seen {
			res.Reason = StopRepeatedEdge
			return res, nil
		}
		crossed[edge] = struct{}{}

		step := Step{Index: len(res.Steps), From: cur, To: next.ID, Weight: next.Weight}
		if o.cont != nil && !o.cont(step) {
			res.Reason = StopCancelled
			return res, nil
		}
		res.Steps = append(res.Steps, step)
		cur = next.ID
	}
}
