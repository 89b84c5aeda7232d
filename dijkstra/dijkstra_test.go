package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/builder"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/dijkstra"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
)

// ------------------------------------------------------------------------
// 1. Scenarios
// ------------------------------------------------------------------------

func TestFindShortestPaths_DetourBeatsDirectEdge(t *testing.T) {
	g := newGraph(t, 3,
		dijkstra.Triple{From: 1, To: 2, Weight: 5},
		dijkstra.Triple{From: 2, To: 3, Weight: 5},
		dijkstra.Triple{From: 1, To: 3, Weight: 20},
	)
	g.FindShortestPaths()

	require.Equal(t, matrix.Finite(10), dist(t, g, 1, 3))

	path, err := g.Path(1, 3)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 2, 3}, path); diff != "" {
		t.Errorf("Path(1,3) mismatch (-want +got):\n%s", diff)
	}

	e, err := g.Entry(1, 3)
	require.NoError(t, err)
	assert.True(t, e.Visited)
	assert.Equal(t, 2, e.Path)

	// Nothing leaves node 3.
	assert.True(t, dist(t, g, 3, 1).IsInf())
}

func TestFindShortestPaths_NoEdges(t *testing.T) {
	g := newGraph(t, 2)
	g.FindShortestPaths()

	require.True(t, dist(t, g, 1, 2).IsInf())
	require.Equal(t, matrix.Zero, dist(t, g, 1, 1))

	_, err := g.Path(1, 2)
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	row, err := g.Report(1, 2)
	require.NoError(t, err)
	require.False(t, row.Reachable())
	require.Equal(t, "1\t2\t"+dijkstra.Unreachable, row.String())
}

func TestFindShortestPaths_EmptyGraphIsNoop(t *testing.T) {
	g := dijkstra.New()
	require.NotPanics(t, g.FindShortestPaths)
	require.Nil(t, g.AllPairs())
}

func TestFindShortestPaths_TieGoesToLowestIndex(t *testing.T) {
	// Two equal routes 1→2→4 and 1→3→4.
	g := newGraph(t, 4,
		dijkstra.Triple{From: 1, To: 3, Weight: 1},
		dijkstra.Triple{From: 1, To: 2, Weight: 1},
		dijkstra.Triple{From: 3, To: 4, Weight: 1},
		dijkstra.Triple{From: 2, To: 4, Weight: 1},
	)
	g.FindShortestPaths()

	path, err := g.Path(1, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, path)
}

func TestFindShortestPaths_UnvisitedStayInf(t *testing.T) {
	// 1→2 only; 3 and 4 form an island.
	g := newGraph(t, 4,
		dijkstra.Triple{From: 1, To: 2, Weight: 2},
		dijkstra.Triple{From: 3, To: 4, Weight: 2},
	)
	g.FindShortestPaths()

	for _, d := range []int{3, 4} {
		e, err := g.Entry(1, d)
		require.NoError(t, err)
		assert.False(t, e.Visited)
		assert.True(t, e.Dist.IsInf())
		assert.Zero(t, e.Path)
	}
}

func TestFindShortestPaths_SelfLoopIgnored(t *testing.T) {
	g := newGraph(t, 2,
		dijkstra.Triple{From: 1, To: 1, Weight: 3},
		dijkstra.Triple{From: 1, To: 2, Weight: 4},
	)
	g.FindShortestPaths()

	require.Equal(t, matrix.Zero, dist(t, g, 1, 1))
	require.Equal(t, matrix.Finite(4), dist(t, g, 1, 2))
}

func TestFindShortestPaths_RemovedEdgeNotUsed(t *testing.T) {
	g := newGraph(t, 3,
		dijkstra.Triple{From: 1, To: 2, Weight: 5},
		dijkstra.Triple{From: 2, To: 3, Weight: 5},
		dijkstra.Triple{From: 1, To: 3, Weight: 20},
	)
	require.NoError(t, g.RemoveEdge(1, 2))
	g.FindShortestPaths()

	require.Equal(t, matrix.Finite(20), dist(t, g, 1, 3))
	path, err := g.Path(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, path)
	require.True(t, dist(t, g, 1, 2).IsInf())
}

func TestRemoveEdge_OutOfRangeIsHarmless(t *testing.T) {
	g := newGraph(t, 2, dijkstra.Triple{From: 1, To: 2, Weight: 1})
	require.ErrorIs(t, g.RemoveEdge(1, 3), dijkstra.ErrOutOfRange)
	g.FindShortestPaths()
	require.Equal(t, matrix.Finite(1), dist(t, g, 1, 2))
}

// ------------------------------------------------------------------------
// 2. Properties over seeded random graphs (≤ 6 nodes, brute-force checkable)
// ------------------------------------------------------------------------

func forEachRandomGraph(t *testing.T, fn func(t *testing.T, g *dijkstra.Graph)) {
	for n := 1; n <= 6; n++ {
		for seed := int64(1); seed <= 8; seed++ {
			for _, p := range []float64{0.25, 0.5} {
				g := randomGraph(t, n, p, seed)
				t.Run(fmt.Sprintf("n=%d/seed=%d/p=%.2f", n, seed, p), func(t *testing.T) {
					fn(t, g)
				})
			}
		}
	}
}

func TestProperty_MatchesBruteForce(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		n := g.NodeCount()
		for s := 1; s <= n; s++ {
			for d := 1; d <= n; d++ {
				require.Equal(t, bruteForce(t, g, s, d), dist(t, g, s, d), "T[%d][%d]", s, d)
			}
		}
	})
}

func TestProperty_MatchesFloydWarshall(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		fw, err := g.Closure()
		require.NoError(t, err)
		dj, err := g.Distances()
		require.NoError(t, err)
		require.Equal(t, fw, dj)
	})
}

func TestProperty_ZeroDiagonal(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		for s := 1; s <= g.NodeCount(); s++ {
			require.Equal(t, matrix.Zero, dist(t, g, s, s))
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		n := g.NodeCount()
		before := make([]dijkstra.Entry, 0, n*n)
		for s := 1; s <= n; s++ {
			for d := 1; d <= n; d++ {
				e, err := g.Entry(s, d)
				require.NoError(t, err)
				before = append(before, e)
			}
		}

		g.FindShortestPaths()

		after := make([]dijkstra.Entry, 0, n*n)
		for s := 1; s <= n; s++ {
			for d := 1; d <= n; d++ {
				e, err := g.Entry(s, d)
				require.NoError(t, err)
				after = append(after, e)
			}
		}
		if diff := cmp.Diff(before, after, cmp.AllowUnexported(matrix.Cost{})); diff != "" {
			t.Errorf("table changed on rerun (-before +after):\n%s", diff)
		}
	})
}

func TestProperty_TriangleInequality(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		n := g.NodeCount()
		for u := 1; u <= n; u++ {
			for v := 1; v <= n; v++ {
				uv := dist(t, g, u, v)
				if uv.IsInf() {
					continue
				}
				for w := 1; w <= n; w++ {
					vw := dist(t, g, v, w)
					if vw.IsInf() {
						continue
					}
					require.False(t, uv.Add(vw).Less(dist(t, g, u, w)), "T[%d][%d] > T[%d][%d]+T[%d][%d]", u, w, u, v, v, w)
				}
			}
		}
	})
}

func TestProperty_PathsAreRealEdges(t *testing.T) {
	forEachRandomGraph(t, func(t *testing.T, g *dijkstra.Graph) {
		n := g.NodeCount()
		for s := 1; s <= n; s++ {
			for d := 1; d <= n; d++ {
				want := dist(t, g, s, d)
				path, err := g.Path(s, d)
				if want.IsInf() {
					require.ErrorIs(t, err, dijkstra.ErrUnreachable)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, s, path[0])
				require.Equal(t, d, path[len(path)-1])

				sum := matrix.Zero
				for i := 1; i < len(path); i++ {
					w, err := g.EdgeWeight(path[i-1], path[i])
					require.NoError(t, err)
					require.False(t, w.IsInf(), "step %d→%d has no edge", path[i-1], path[i])
					sum = sum.Add(w)
				}
				require.Equal(t, want, sum)

				descs, err := g.Descriptions(s, d)
				require.NoError(t, err)
				require.Len(t, descs, len(path))
				for i, v := range path {
					require.Equal(t, fmt.Sprintf("node %d", v), descs[i].String())
				}
			}
		}
	})
}

func TestProperty_RemovedEdgeNeverOnPath(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		f, err := builder.BuildFixture(5, []builder.Option{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
		}, builder.Complete())
		require.NoError(t, err)

		g := dijkstra.New()
		require.NoError(t, builder.Load(g, f))
		g.FindShortestPaths()

		// Cut the first step of the first reported path.
		var cut [2]int
		for _, row := range g.AllPairs() {
			if len(row.Path) > 1 {
				cut = [2]int{row.Path[0], row.Path[1]}
				break
			}
		}
		require.NoError(t, g.RemoveEdge(cut[0], cut[1]))
		g.FindShortestPaths()

		for _, row := range g.AllPairs() {
			for i := 1; i < len(row.Path); i++ {
				require.False(t, row.Path[i-1] == cut[0] && row.Path[i] == cut[1],
					"seed %d: path %v still uses removed edge %v", seed, row.Path, cut)
			}
		}
	}
}
