// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Independent of the Dijkstra engine, so the two can check each other.
//
// Contract:
//   - Inf means "no path"; diagonal must be 0 before calling.

package matrix

import "fmt"

const opFloydWarshall = "FloydWarshall"

// DistancesFrom builds a distance matrix from an adjacency matrix:
// diagonal = 0, every other cell copied unchanged (Inf stays Inf).
// The input is not modified.
// Complexity: O(n²).
func DistancesFrom(adj *Dense) (*Dense, error) {
	if adj == nil {
		return nil, matrixErrorf("DistancesFrom", ErrNilMatrix)
	}
	out := adj.Clone()
	for i := 0; i < out.n; i++ {
		out.data[i*out.n+i] = Zero
	}

	return out, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - d must be non-nil (ErrNilMatrix).
//   - Every diagonal cell must be Finite(0) (ErrNonZeroDiagonal).
//
// Loop order is fixed (k → i → j); a cell is only replaced on strict improvement.
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	n := d.n
	data := d.data

	// 1) Validate the diagonal.
	var i int
	for i = 0; i < n; i++ {
		if v, ok := data[i*n+i].Value(); !ok || v != 0 {
			return matrixErrorf(opFloydWarshall, fmt.Errorf("cell (%d,%d)=%s: %w", i, i, data[i*n+i], ErrNonZeroDiagonal))
		}
	}

	// 2) Closure.
	var (
		k, j         int
		baseK, baseI int
		ik, cand     Cost
	)
	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik.IsInf() { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				cand = ik.Add(data[baseK+j]) // Inf if k cannot reach j
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
