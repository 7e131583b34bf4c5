// Package dot serializes a word graph into the Graphviz DOT language.
//
// Overview:
//
//   - Export is a pure function of the graph and its options: it returns the
//     DOT text and touches no file or process. Persisting and rendering live
//     in internal/render.
//   - Every vertex is declared, so dead ends and isolated words are drawn.
//   - Every edge carries its weight as label; edges on a highlighted path
//     (consecutive-pair membership) get an extra color and pen width.
//   - Identifiers are always quoted: DOT keywords such as "graph", "node",
//     "edge" or "strict" are ordinary corpus words.
//
// Output shape:
//
//	digraph G {
//	  "the";
//	  "cat";
//	  "the" -> "cat" [label=2];
//	  "cat" -> "ran" [label=1, color=red, penwidth=2.0];
//	}
//
// Determinism: vertices follow enumeration order, edges follow source order
// then neighbor discovery order, so equal graphs yield equal text.
package dot
