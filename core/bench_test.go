// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// BenchmarkAddEdge_Fresh measures inserting distinct pairs (vertex and edge creation).
func BenchmarkAddEdge_Fresh(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", fmt.Sprintf("n%d", i), 1)
	}
}

// BenchmarkAddEdge_Accumulate measures the repeated-pair path, the common
// case for natural-language corpora.
func BenchmarkAddEdge_Accumulate(b *testing.B) {
	g := core.NewGraph()
	targets := make([]string, 100)
	for i := range targets {
		targets[i] = fmt.Sprintf("n%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", targets[i%len(targets)], 1)
	}
}

// BenchmarkNeighbors measures the neighbor snapshot of a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("center", fmt.Sprintf("node%d", i), 1)
	}
	g.Freeze()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("center")
	}
}

// BenchmarkEdges measures full edge enumeration on a dense-ish graph.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		for j := 0; j < 10; j++ {
			_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+j+1)%100), 1)
		}
	}
	g.Freeze()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
