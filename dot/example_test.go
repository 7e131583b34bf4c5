package dot_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/dot"
)

func ExampleExport() {
	g, _ := builder.FromText("go build go test")

	out, _ := dot.Export(g, dot.WithHighlight([]string{"build", "go"}))
	fmt.Print(out)
	// Output:
	// digraph G {
	//   "go";
	//   "build";
	//   "test";
	//   "go" -> "build" [label=1];
	//   "go" -> "test" [label=1];
	//   "build" -> "go" [label=1, color=red, penwidth=2.0];
	// }
}
