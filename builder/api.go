// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - One fold: build(seq, cfg, method). Every From* resolves a token source and delegates.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same corpus and options ⇒ identical graph, including enumeration order.
//   - Safety: never panic; I/O failures surface as ErrCorpusRead, never swallowed.
//   - Every returned graph is frozen.

package builder

import (
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// FromTokens folds an already tokenized sequence into a frozen graph.
// Tokens are used verbatim; an empty token fails with core.ErrEmptyVertexID.
// Complexity: O(n) for n tokens.
func FromTokens(seq iter.Seq[string], opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	withErr := func(yield func(string, error) bool) {
		for tok := range seq {
			if !yield(tok, nil) {
				return
			}
		}
	}

	return build(withErr, cfg, MethodFromTokens)
}

// FromText tokenizes text and builds its frozen word graph.
// Complexity: O(len(text)).
func FromText(text string, opts ...BuilderOption) (*core.Graph, error) {
	return FromReader(strings.NewReader(text), opts...)
}

// FromReader streams tokens from r and builds the frozen word graph.
//
// Errors:
//   - ErrNilReader if r is nil.
//   - ErrCorpusRead (wrapping the I/O error) if reading fails midway.
func FromReader(r io.Reader, opts ...BuilderOption) (*core.Graph, error) {
	if r == nil {
		return nil, builderErrorf(MethodFromReader, ErrNilReader, nil, "no corpus")
	}
	cfg := newBuilderConfig(opts...)

	return build(tokenize.Scan(r), cfg, MethodFromReader)
}

// FromFile opens path on the configured filesystem (WithFS, default OS)
// and builds the frozen word graph from its contents.
//
// Errors:
//   - ErrCorpusRead (wrapping the open or read error).
func FromFile(path string, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	f, err := cfg.fs.Open(path)
	if err != nil {
		return nil, builderErrorf(MethodFromFile, ErrCorpusRead, err, "open %q", path)
	}
	defer f.Close()

	g, err := build(tokenize.Scan(f), cfg, MethodFromFile)
	if err != nil {
		return nil, err
	}
	cfg.logger.Info("corpus loaded", "path", path, "words", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// build folds consecutive token pairs (t_i, t_{i+1}) into weighted edges.
//
// Implementation:
//   - Stage 1: The first token becomes a vertex on its own, so 1-token corpora keep it.
//   - Stage 2: Each following token adds pairWeight to prev→tok (creating tok if new).
//   - Stage 3: Freeze the graph.
//
// The final token is always present as a vertex because AddEdge creates both endpoints.
func build(seq iter.Seq2[string, error], cfg builderConfig, method string) (*core.Graph, error) {
	g := core.NewGraph()
	var (
		prev   string
		tokens int
	)
	for tok, err := range seq {
		if err != nil {
			return nil, builderErrorf(method, ErrCorpusRead, err, "after %d tokens", tokens)
		}
		if tokens == 0 {
			err = g.AddVertex(tok)
		} else {
			err = g.AddEdge(prev, tok, cfg.pairWeight)
		}
		if err != nil {
			return nil, builderErrorf(method, err, nil, "token %d", tokens)
		}
		prev = tok
		tokens++
	}
	g.Freeze()

	cfg.logger.Debug("graph built",
		"method", method,
		"tokens", tokens,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}
