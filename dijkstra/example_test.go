// Package dijkstra_test provides examples demonstrating the shortest-path queries.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// ExampleShortestPath shows that path length sums edge weights.
func ExampleShortestPath() {
	g, _ := builder.FromText("the cat sat the cat ran")

	res, err := dijkstra.ShortestPath(g, "the", "ran")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// The shortest path from "the" to "ran" is:
	// the -> cat -> ran
	// Path length: 3
}

// ExampleShortestPathsFrom lists every target in enumeration order.
func ExampleShortestPathsFrom() {
	g, _ := builder.FromText("a b c. d")

	res, _ := dijkstra.ShortestPathsFrom(g, "b")
	for _, p := range res.Paths {
		fmt.Println(p.To, p.Status, p.Length)
	}
	// Output:
	// a unreachable 0
	// c found 1
	// d found 2
}

// ExampleDijkstra computes raw distances with the predecessor map.
func ExampleDijkstra() {
	g, _ := builder.FromText("x y z x z")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("x"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[z]=%d, prev[z]=%s\n", dist["z"], prev["z"])
	// Output: dist[z]=1, prev[z]=x
}
