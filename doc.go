// Package wordgraph turns text into a weighted directed graph of adjacent
// words and answers questions about it.
//
// Every ASCII-letter run of a corpus is a lowercase word; each time word B
// immediately follows word A the edge A→B gains one unit of weight.
//
// Packages:
//
//	tokenize/  lazy, restartable word sequences from strings and readers
//	builder/   corpus → frozen core.Graph (text, reader, file via afero)
//	core/      the thread-safe weighted adjacency store
//	bridge/    bridge-word queries and bridge-word text expansion
//	dijkstra/  weighted shortest paths, single pair and single source
//	walk/      random walks that stop on a dead end or a repeated edge
//	dot/       Graphviz DOT export with optional highlighted path
//
// The wordgraph command (cmd/wordgraph) exposes all of them:
//
//	wordgraph -f corpus.txt show
//	wordgraph -f corpus.txt bridge explore new
//	wordgraph -f corpus.txt generate "seek explore new"
//	wordgraph -f corpus.txt path to new
//	wordgraph -f corpus.txt walk --interactive
//
// Quick start:
//
//	g, err := builder.FromText("the cat sat the cat ran")
//	if err != nil { /* ... */ }
//	res, _ := dijkstra.ShortestPath(g, "the", "ran")
//	fmt.Println(res) // the -> cat -> ran, length 3
package wordgraph
