// Package dijkstra_test contains unit tests for the Dijkstra implementation
// and the word-level path queries built on it.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// catGraph is the word graph of "the cat sat the cat ran":
// the→cat(2), cat→sat(1), sat→the(1), cat→ran(1).
func catGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.FromText("the cat sat the cat ran")
	require.NoError(t, err)

	return g
}

// weighted builds a graph from explicit weighted edges.
func weighted(t *testing.T, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := catGraph(t)

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("the"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("dog"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("the"), dijkstra.WithMaxDistance(-1))
	})

	_, err = dijkstra.ShortestPath(nil, "a", "b")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.ShortestPathsFrom(nil, "a")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 2. Raw distances
// ------------------------------------------------------------------------

func TestDijkstra_Distances(t *testing.T) {
	g := catGraph(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
	assert.Equal(t, map[string]int64{
		"cat": 0,
		"sat": 1,
		"ran": 1,
		"the": 2,
	}, dist)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("ran"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist["the"])
	assert.Equal(t, "", prev["the"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t,
		core.Edge{From: "a", To: "b", Weight: 1},
		core.Edge{From: "b", To: "c", Weight: 5},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["b"])
	assert.Equal(t, dijkstra.Unreachable, dist["c"])
}

// ------------------------------------------------------------------------
// 3. Single-pair queries
// ------------------------------------------------------------------------

func TestShortestPath_CatScenario(t *testing.T) {
	g := catGraph(t)

	res, err := dijkstra.ShortestPath(g, "the", "ran")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PathFound, res.Status)
	assert.Equal(t, []string{"the", "cat", "ran"}, res.Path)
	assert.Equal(t, int64(3), res.Length, "length is the weight sum 2+1")
	assert.Equal(t, "The shortest path from \"the\" to \"ran\" is:\nthe -> cat -> ran\nPath length: 3", res.String())
}

func TestShortestPath_SelfPair(t *testing.T) {
	g := catGraph(t)
	for _, w := range g.Vertices() {
		res, err := dijkstra.ShortestPath(g, w, w)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.PathFound, res.Status, w)
		assert.Equal(t, []string{w}, res.Path, w)
		assert.Zero(t, res.Length, w)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := catGraph(t)

	res, err := dijkstra.ShortestPath(g, "ran", "the")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PathUnreachable, res.Status)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Length, "infinite distance must not leak")
	assert.Equal(t, `No path from "ran" to "the"!`, res.String())

	// Two isolated words with no edges anywhere.
	iso := core.NewGraph()
	require.NoError(t, iso.AddVertex("left"))
	require.NoError(t, iso.AddVertex("right"))
	res, err = dijkstra.ShortestPath(iso, "left", "right")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PathUnreachable, res.Status)
}

func TestShortestPath_Missing(t *testing.T) {
	g := catGraph(t)

	tests := []struct{ from, to string }{
		{"dog", "cat"},
		{"cat", "dog"},
		{"w$%#^@!*&()_+/a", ""},
	}
	for _, tc := range tests {
		res, err := dijkstra.ShortestPath(g, tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.PathMissing, res.Status)
		assert.Equal(t, "One or both words are not in the graph!", res.String())
	}

	res, err := dijkstra.ShortestPath(core.NewGraph(), "without", "test")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.PathMissing, res.Status, "empty graph has no words")
}

func TestShortestPath_NormalizesWords(t *testing.T) {
	g := catGraph(t)
	res, err := dijkstra.ShortestPath(g, " The ", "RAN")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "ran"}, res.Path)
}

func TestShortestPath_PrefersLighterOverShorter(t *testing.T) {
	// a→d directly costs 10; a→b→c→d costs 3.
	g := weighted(t,
		core.Edge{From: "a", To: "d", Weight: 10},
		core.Edge{From: "a", To: "b", Weight: 1},
		core.Edge{From: "b", To: "c", Weight: 1},
		core.Edge{From: "c", To: "d", Weight: 1},
	)
	res, err := dijkstra.ShortestPath(g, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Path)
	assert.Equal(t, int64(3), res.Length)
}

func TestShortestPath_DeterministicTies(t *testing.T) {
	// Two equal-cost routes a→b→d and a→c→d; b is enumerated before c.
	build := func() *core.Graph {
		return weighted(t,
			core.Edge{From: "a", To: "b", Weight: 1},
			core.Edge{From: "a", To: "c", Weight: 1},
			core.Edge{From: "b", To: "d", Weight: 1},
			core.Edge{From: "c", To: "d", Weight: 1},
		)
	}
	for i := 0; i < 20; i++ {
		res, err := dijkstra.ShortestPath(build(), "a", "d")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "d"}, res.Path)
	}
}

func TestShortestPath_WeightMonotonic(t *testing.T) {
	var last int64
	for w := int64(1); w <= 6; w++ {
		g := weighted(t,
			core.Edge{From: "a", To: "b", Weight: w},
			core.Edge{From: "b", To: "c", Weight: 1},
			core.Edge{From: "a", To: "c", Weight: 4},
		)
		res, err := dijkstra.ShortestPath(g, "a", "c")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Length, last, "w=%d", w)
		last = res.Length
	}
	assert.Equal(t, int64(4), last, "direct edge caps the length")
}

// ------------------------------------------------------------------------
// 4. Single-source queries
// ------------------------------------------------------------------------

func TestShortestPathsFrom(t *testing.T) {
	g := catGraph(t)

	res, err := dijkstra.ShortestPathsFrom(g, "sat")
	require.NoError(t, err)
	require.False(t, res.Missing)
	require.Len(t, res.Paths, 3)

	targets := make([]string, len(res.Paths))
	for i, p := range res.Paths {
		targets[i] = p.To
		single, err := dijkstra.ShortestPath(g, "sat", p.To)
		require.NoError(t, err)
		assert.Equal(t, single, p, "matches the single-pair query for %s", p.To)
	}
	assert.Equal(t, []string{"the", "cat", "ran"}, targets, "enumeration order")

	assert.Equal(t, int64(4), res.Paths[2].Length, "sat→the→cat→ran = 1+2+1")
}

func TestShortestPathsFrom_IncludesUnreachable(t *testing.T) {
	g := catGraph(t)
	res, err := dijkstra.ShortestPathsFrom(g, "ran")
	require.NoError(t, err)
	require.Len(t, res.Paths, 3)
	for _, p := range res.Paths {
		assert.Equal(t, dijkstra.PathUnreachable, p.Status)
	}
	assert.Equal(t,
		"No path from \"ran\" to \"the\"!\nNo path from \"ran\" to \"cat\"!\nNo path from \"ran\" to \"sat\"!",
		res.String())
}

func TestShortestPathsFrom_Missing(t *testing.T) {
	res, err := dijkstra.ShortestPathsFrom(catGraph(t), "dog")
	require.NoError(t, err)
	assert.True(t, res.Missing)
	assert.Equal(t, "The word is not in the graph!", res.String())
}

func TestPathStatus_MarshalText(t *testing.T) {
	for s, want := range map[dijkstra.PathStatus]string{
		dijkstra.PathFound:       "found",
		dijkstra.PathUnreachable: "unreachable",
		dijkstra.PathMissing:     "missing",
	} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
	assert.Equal(t, "PathStatus(9)", dijkstra.PathStatus(9).String())
}
