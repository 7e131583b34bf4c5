// File: export.go
// Role: DOT serialization of a word graph.
// Policy:
//   - No I/O; the caller persists the text.
//   - Vertex IDs are always quoted and escaped, weights are bare integers.

package dot

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Export returns the DOT description of g.
//
// Implementation:
//   - Stage 1: collect highlighted pairs from the optional path.
//   - Stage 2: declare every vertex.
//   - Stage 3: emit every edge with its weight label, adding highlight
//     attributes for collected pairs.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity:
//   - Time O(V + E + P), Space O(P) besides the output.
func Export(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	o := newOptions(opts...)

	marked := make(map[[2]string]struct{}, len(o.highlight))
	for i := 0; i+1 < len(o.highlight); i++ {
		marked[[2]string{o.highlight[i], o.highlight[i+1]}] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("digraph ")
	b.WriteString(id(o.name))
	b.WriteString(" {\n")

	for _, v := range g.Vertices() {
		b.WriteString("  ")
		b.WriteString(quote(v))
		b.WriteString(";\n")
	}

	for _, e := range g.Edges() {
		b.WriteString("  ")
		b.WriteString(quote(e.From))
		b.WriteString(" -> ")
		b.WriteString(quote(e.To))
		b.WriteString(" [label=")
		b.WriteString(strconv.FormatInt(e.Weight, 10))
		if _, ok := marked[[2]string{e.From, e.To}]; ok {
			b.WriteString(", color=")
			b.WriteString(id(o.color))
			b.WriteString(", penwidth=")
			b.WriteString(highlightPenWidth)
		}
		b.WriteString("];\n")
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// keywords are reserved in DOT regardless of case.
var keywords = map[string]struct{}{
	"graph": {}, "digraph": {}, "subgraph": {}, "node": {}, "edge": {}, "strict": {},
}

// id renders s bare when it is a plain DOT identifier, quoted otherwise.
// Used for attribute values and the graph name, never for vertices.
func id(s string) string {
	if _, reserved := keywords[strings.ToLower(s)]; reserved {
		return quote(s)
	}
	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return quote(s)
		}
	}

	return s
}

// quote renders s as a DOT double-quoted ID. Inside such IDs only the
// double quote needs escaping; a trailing backslash would escape the
// closing quote, so backslashes are doubled too.
func quote(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	return `"` + r.Replace(s) + `"`
}
