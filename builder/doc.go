// Package builder folds a text corpus into a frozen core.Graph.
//
// For every consecutive token pair (t_i, t_{i+1}) the edge t_i→t_{i+1}
// gains one unit of weight (created with weight 1 on first sight). The
// first token is registered on its own, so corpora of 0 or 1 tokens yield
// an empty graph or a single isolated vertex; the final token is always a
// vertex even when it has no outgoing edge.
//
// Entry points:
//
//	FromText(text, opts...)      – in-memory corpus
//	FromReader(r, opts...)       – streamed corpus (bufio.Scanner + tokenize.SplitLetters)
//	FromFile(path, opts...)      – file on an afero.Fs (default: OS filesystem)
//	FromTokens(seq, opts...)     – pre-tokenized iter.Seq[string]
//
// Options:
//
//	WithFS(afero.Fs)             – filesystem for FromFile
//	WithLogger(*slog.Logger)     – build diagnostics (default: discard)
//	WithPairWeight(int64)        – weight per observed pair (default 1)
//
// Errors:
//
//	ErrCorpusRead      – open/read failure (wraps the I/O error)
//	ErrNilReader       – FromReader(nil)
//	ErrOptionViolation – message of panics raised by option constructors
//
// Unreadable corpora are hard failures: the caller receives the error and
// no partial graph.
package builder
