// Package bridge finds bridge words in a word graph and uses them to
// augment text.
//
// A word w bridges a to b iff both edges a→w and w→b exist. For the
// corpus "the cat sat the cat ran", "cat" bridges "the" to "sat".
package bridge

import (
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Query returns every bridge word from a to b.
//
// Words are normalized (trimmed, lowercased) first. An absent word yields
// StatusMissing, an empty bridge set StatusNone; both are results, not
// errors. The only error is ErrNilGraph.
//
// Complexity: O(d) for d = out-degree of a.
func Query(g *core.Graph, a, b string) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	return query(g, tokenize.Normalize(a), tokenize.Normalize(b)), nil
}

// query assumes normalized words and a non-nil graph.
func query(g *core.Graph, a, b string) Result {
	res := Result{From: a, To: b}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		res.Status = StatusMissing
		return res
	}

	succ, err := g.NeighborIDs(a)
	if err != nil {
		res.Status = StatusMissing
		return res
	}
	for _, w := range succ {
		if g.HasEdge(w, b) {
			res.Words = append(res.Words, w)
		}
	}
	if len(res.Words) == 0 {
		res.Status = StatusNone
		return res
	}
	res.Status = StatusFound

	return res
}

// GenerateText rewrites text by splicing one bridge word between each
// adjacent pair of its tokens, when that pair has any.
//
// Behavior highlights:
//   - text is tokenized like a corpus (letters only, lowercased).
//   - Only ORIGINAL pairs are examined: an inserted word never forms a new
//     pair, so insertion does not cascade.
//   - With several candidates one is drawn uniformly (WithRand / WithSeed).
//   - Fewer than two tokens: text is returned unchanged.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity: O(n·d) for n tokens and maximal out-degree d.
func GenerateText(g *core.Graph, text string, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	toks := tokenize.Tokenize(text)
	if len(toks) < 2 {
		return text, nil
	}
	o := newOptions(opts...)

	var sb strings.Builder
	for i := 0; i < len(toks)-1; i++ {
		sb.WriteString(toks[i])
		sb.WriteByte(' ')
		if res := query(g, toks[i], toks[i+1]); len(res.Words) > 0 {
			sb.WriteString(res.Words[o.rng.Intn(len(res.Words))])
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(toks[len(toks)-1])

	return sb.String(), nil
}
