package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
)

// AllPairs reports every ordered pair (i, j) with i ≠ j, in row-major order.
// Unreachable pairs carry Dist == Inf and a nil Path.
func (g *Graph) AllPairs() []Row {
	n := len(g.data)
	if n == 0 {
		return nil
	}

	rows := make([]Row, 0, n*(n-1))
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			row := Row{Description: g.data[i-1], From: i, To: j, Dist: g.t[i-1][j-1].Dist}
			if row.Reachable() {
				// An error here means the table is corrupt; report the pair as unreachable.
				path, err := g.walk(i, j)
				if err != nil {
					g.log.Error("path reconstruction failed",
						zap.Int("from", i), zap.Int("to", j), zap.Error(err))
					row.Dist = matrix.Inf
				}
				row.Path = path
			}
			rows = append(rows, row)
		}
	}

	return rows
}

// Report describes one pair: distance, node path and description path.
//
// Indices are checked against Capacity, not NodeCount: a pair within capacity
// but beyond the live node count is simply unreachable. Only indices outside
// [1, Capacity] return ErrOutOfRange.
func (g *Graph) Report(start, end int) (Row, error) {
	limit := g.opts.Capacity
	if start < 1 || start > limit || end < 1 || end > limit {
		return Row{}, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfRange, start, end, limit)
	}

	row := Row{From: start, To: end, Dist: matrix.Inf}
	if start > len(g.data) || end > len(g.data) {
		return row, nil
	}
	row.Description = g.data[start-1]
	row.Dist = g.t[start-1][end-1].Dist
	if !row.Reachable() {
		return row, nil
	}

	path, err := g.walk(start, end)
	if err != nil {
		return Row{}, err
	}
	row.Path = path
	row.Descriptions = g.describe(path)

	return row, nil
}

// Closure returns the n×n (0-based) all-pairs distance matrix of the current
// edges computed with Floyd–Warshall. It reads only the adjacency matrix, so
// it reflects edge mutations made since the last FindShortestPaths run and
// can be compared against the Dijkstra table.
func (g *Graph) Closure() (*matrix.Dense, error) {
	if len(g.data) == 0 {
		return nil, fmt.Errorf("%w: closure of empty graph", ErrNodeCount)
	}
	d, err := matrix.DistancesFrom(g.c)
	if err != nil {
		return nil, err
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}

// Distances returns a copy of the distance part of T as a 0-based matrix.
func (g *Graph) Distances() (*matrix.Dense, error) {
	n := len(g.data)
	d, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	d.Fill(func(i, j int) matrix.Cost { return g.t[i][j].Dist })

	return d, nil
}
