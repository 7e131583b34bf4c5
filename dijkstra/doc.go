// Package dijkstra provides shortest-path queries over wordgraph's weighted
// directed word graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - Path length is the SUM OF EDGE WEIGHTS (adjacency counts), not the hop count:
//     in "the cat sat the cat ran" the path the → cat → ran has length 2 + 1 = 3.
//   - Extraction ties are broken by vertex enumeration rank (first appearance in
//     the corpus), and relaxation only accepts strictly shorter distances, so
//     reconstructed paths are reproducible for a given graph.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//
//	  - opts:  Source(string) (required), WithReturnPath(), WithMaxDistance(int64).
//	  - dist:  minimal distance per vertex, or Unreachable.
//	  - prev:  immediate predecessor on one shortest path, "" for source/unreachable.
//
//	func ShortestPath(g *core.Graph, from, to string) (PathResult, error)
//	func ShortestPathsFrom(g *core.Graph, from string) (SourceResult, error)
//
//	  - Status PathMissing:     a word is absent from the graph.
//	  - Status PathUnreachable: both present, no directed path.
//	  - Status PathFound:       Path (from … to) and Length are set.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Dijkstra called without Source.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: Dijkstra source absent (the path API reports PathMissing instead).
//   - ErrBadMaxDistance: panic message of WithMaxDistance(negative).
//
// Thread safety:
//
//   - Queries only read the graph; a frozen graph may be queried from any goroutine.
package dijkstra
