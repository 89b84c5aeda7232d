// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense is a square n×n matrix of Cost stored in a flat row-major buffer.
//   - Indices are 0-based; callers with 1-based node numbers translate at their boundary.
//
// Contract:
//   - NewDense(n) allocates exactly n×n cells, all Inf.
//   - At/Set never panic: out-of-range indices return ErrOutOfRange.

package matrix

import "fmt"

const (
	opNewDense = "NewDense"
	opAt       = "At"
	opSet      = "Set"
)

// Dense is a square cost matrix.
type Dense struct {
	n    int    // order (rows == cols)
	data []Cost // row-major, len == n*n
}

// NewDense allocates an n×n matrix with every cell set to Inf.
// Returns ErrInvalidDimensions if n < 1.
// Complexity: O(n²) zeroing by the runtime.
func NewDense(n int) (*Dense, error) {
	if n < 1 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}

	// Zero Cost is Inf, so no explicit fill is needed.
	return &Dense{n: n, data: make([]Cost, n*n)}, nil
}

// Size returns the order n of the matrix.
func (d *Dense) Size() int { return d.n }

// indexOf validates (i, j) and returns the flat offset.
func (d *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("(%d,%d) not in %dx%d: %w", i, j, d.n, d.n, ErrOutOfRange)
	}

	return i*d.n + j, nil
}

// At returns the cost stored at (i, j).
func (d *Dense) At(i, j int) (Cost, error) {
	k, err := d.indexOf(i, j)
	if err != nil {
		return Inf, matrixErrorf(opAt, err)
	}

	return d.data[k], nil
}

// Set stores c at (i, j).
func (d *Dense) Set(i, j int, c Cost) error {
	k, err := d.indexOf(i, j)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	d.data[k] = c

	return nil
}

// Fill overwrites every cell with fn(i, j), row by row.
func (d *Dense) Fill(fn func(i, j int) Cost) {
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			d.data[i*d.n+j] = fn(i, j)
		}
	}
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	data := make([]Cost, len(d.data))
	copy(data, d.data)

	return &Dense{n: d.n, data: data}
}
