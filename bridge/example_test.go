package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
)

func ExampleQuery() {
	g, _ := builder.FromText("the cat sat the cat ran")

	res, _ := bridge.Query(g, "the", "sat")
	fmt.Println(res)
	res, _ = bridge.Query(g, "sat", "ran")
	fmt.Println(res)
	// Output:
	// The bridge words from "the" to "sat" are: cat.
	// No bridge words from "sat" to "ran"!
}

func ExampleGenerateText() {
	g, _ := builder.FromText("seek to explore new worlds")

	out, _ := bridge.GenerateText(g, "Seek explore new")
	fmt.Println(out)
	// Output: seek to explore new
}
