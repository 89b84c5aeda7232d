package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/builder"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/dijkstra"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
)

// newGraph builds a graph with n nodes described "1".."n" and the given edges.
func newGraph(t *testing.T, n int, edges ...dijkstra.Triple) *dijkstra.Graph {
	t.Helper()

	f, err := builder.BuildFixture(n, nil)
	require.NoError(t, err)
	f.Edges = edges

	g := dijkstra.New()
	require.NoError(t, builder.Load(g, f))

	return g
}

// randomGraph returns a computed graph over a seeded random sparse fixture.
func randomGraph(t *testing.T, n int, p float64, seed int64) *dijkstra.Graph {
	t.Helper()

	f, err := builder.BuildFixture(n, []builder.Option{
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
	}, builder.RandomSparse(p))
	require.NoError(t, err)

	g := dijkstra.New()
	require.NoError(t, builder.Load(g, f))
	g.FindShortestPaths()

	return g
}

// bruteForce returns the minimum weight over all simple directed paths
// src→dst, enumerated by exhaustive DFS. Only for tiny graphs.
func bruteForce(t *testing.T, g *dijkstra.Graph, src, dst int) matrix.Cost {
	t.Helper()

	if src == dst {
		return matrix.Zero
	}
	n := g.NodeCount()
	best := matrix.Inf
	onPath := make([]bool, n+1)

	var dfs func(u int, acc matrix.Cost)
	dfs = func(u int, acc matrix.Cost) {
		if u == dst {
			if acc.Less(best) {
				best = acc
			}
			return
		}
		onPath[u] = true
		for v := 1; v <= n; v++ {
			if onPath[v] {
				continue
			}
			w, err := g.EdgeWeight(u, v)
			require.NoError(t, err)
			if w.IsInf() {
				continue
			}
			dfs(v, acc.Add(w))
		}
		onPath[u] = false
	}
	dfs(src, matrix.Zero)

	return best
}

// dist reads T[s][d].Dist.
func dist(t *testing.T, g *dijkstra.Graph, s, d int) matrix.Cost {
	t.Helper()

	e, err := g.Entry(s, d)
	require.NoError(t, err)

	return e.Dist
}
