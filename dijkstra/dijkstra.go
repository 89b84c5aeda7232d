// Package dijkstra implements all-pairs shortest paths on a dense,
// positively weighted directed graph by running Dijkstra's algorithm from
// every node.
//
// Complexity:
//
//   - Time:  O(V³) per FindShortestPaths run (O(V²) per source).
//   - Each source finalizes at most V nodes.
//   - Each finalization scans one adjacency row (relax) and one table row (select), O(V) each.
//   - Space: O(V²) for the adjacency matrix and O(V²) for the table.
//
// Notes on implementation choices:
//
//   - No priority queue: the next node comes from a linear scan of the table row.
//   - Ties on distance go to the lowest node index (first strict minimum in
//     ascending scan order).
//   - Edge weights are validated at insertion; there is no pre-scan here.
package dijkstra

import (
	"go.uber.org/zap"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
)

// FindShortestPaths recomputes the whole table T from the current edges,
// discarding the results of any earlier run. It is a no-op on an empty graph.
//
// After it returns, for every pair of nodes (s, d):
//   - T[s][d].Dist is the minimum total weight of a directed s→d path, or Inf.
//   - T[s][s].Dist == 0.
//   - Following T[s][d].Path repeatedly from a reachable d ends at s.
func (g *Graph) FindShortestPaths() {
	n := len(g.data)
	if n == 0 {
		return
	}

	reached := 0
	for source := 1; source <= n; source++ {
		r := runner{g: g, source: source, row: g.t[source-1]}
		r.init()
		r.process()
		g.log.Debug("source finalized",
			zap.Int("source", source),
			zap.Int("reached", r.finalized))
		reached += r.finalized
	}
	g.stale = false

	g.log.Debug("shortest paths computed",
		zap.Int("nodes", n),
		zap.Int("reachablePairs", reached-n))
}

// runner holds the mutable state for a single source.
type runner struct {
	g         *Graph
	source    int     // 1-based source node
	row       []Entry // T[source][*], 0-based
	finalized int     // number of nodes marked visited
}

// init resets T[source][*] to {false, Inf, 0} and sets the source distance to 0.
func (r *runner) init() {
	for i := range r.row {
		r.row[i] = Entry{Dist: matrix.Inf}
	}
	r.row[r.source-1].Dist = matrix.Zero
}

// process finalizes nodes in order of increasing distance until the closest
// unvisited node is unreachable.
func (r *runner) process() {
	previous := r.source
	for previous != 0 {
		// 1) previous now holds its final distance.
		r.row[previous-1].Visited = true
		r.finalized++

		// 2) Relax every edge leaving previous.
		r.relax(previous)

		// 3) Choose the next node; 0 means nothing reachable is left.
		previous = r.closest()
	}
}

// relax lowers T[source][i] for each unvisited i with an edge previous→i,
// when going through previous is strictly shorter.
func (r *runner) relax(previous int) {
	base := r.row[previous-1].Dist
	n := len(r.row)
	var (
		i    int
		w    matrix.Cost
		cand matrix.Cost
	)
	for i = 1; i <= n; i++ {
		if r.row[i-1].Visited {
			continue
		}
		w = r.g.edge(previous, i)
		if w.IsInf() {
			continue
		}
		cand = base.Add(w)
		if cand.Less(r.row[i-1].Dist) {
			r.row[i-1].Dist = cand
			r.row[i-1].Path = previous
		}
	}
}

// closest returns the unvisited node with the smallest finite distance, or 0.
// The scan starts from a placeholder at distance Inf and moves in ascending
// index order, replacing the candidate only on strict improvement, so the
// lowest index wins ties.
func (r *runner) closest() int {
	shortest, best := 0, matrix.Inf
	for i, e := range r.row {
		if !e.Visited && e.Dist.Less(best) {
			shortest, best = i+1, e.Dist
		}
	}

	return shortest
}
