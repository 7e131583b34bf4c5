package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
)

// ExampleFromText builds the graph of a short corpus and lists its edges.
func ExampleFromText() {
	g, err := builder.FromText("The cat sat, the cat ran.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// the -> cat (2)
	// cat -> sat (1)
	// cat -> ran (1)
	// sat -> the (1)
}
