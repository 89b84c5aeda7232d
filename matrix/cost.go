// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Cost replaces the "very large integer means no edge" convention with an
//     explicit optional value, so absent edges can never leak into arithmetic.
//
// Contract:
//   - The zero value is Inf.
//   - Inf absorbs addition; finite sums saturate at math.MaxInt64.
//   - Inf is never Less than anything, so relaxation through an absent edge
//     can never improve a distance.

package matrix

import (
	"math"
	"strconv"
)

// Cost is a path or edge cost that is either a finite int64 or infinite.
type Cost struct {
	v      int64
	finite bool
}

// Inf is the infinite cost: no edge, or no path found yet.
var Inf = Cost{}

// Zero is the finite cost 0 (distance from a node to itself).
var Zero = Finite(0)

// Finite returns the finite cost v.
func Finite(v int64) Cost { return Cost{v: v, finite: true} }

// IsInf reports whether c is infinite.
func (c Cost) IsInf() bool { return !c.finite }

// Value returns the finite value of c and true, or 0 and false for Inf.
func (c Cost) Value() (int64, bool) { return c.v, c.finite }

// Add returns c + o. If either operand is Inf the result is Inf.
func (c Cost) Add(o Cost) Cost {
	if !c.finite || !o.finite {
		return Inf
	}
	// Saturate rather than wrap around.
	if o.v > 0 && c.v > math.MaxInt64-o.v {
		return Finite(math.MaxInt64)
	}
	if o.v < 0 && c.v < math.MinInt64-o.v {
		return Finite(math.MinInt64)
	}

	return Finite(c.v + o.v)
}

// Less reports whether c is strictly smaller than o.
// Any finite cost is less than Inf; Inf is less than nothing.
func (c Cost) Less(o Cost) bool {
	switch {
	case !c.finite:
		return false
	case !o.finite:
		return true
	default:
		return c.v < o.v
	}
}

// String renders the decimal value, or "∞" for Inf.
func (c Cost) String() string {
	if !c.finite {
		return "∞"
	}

	return strconv.FormatInt(c.v, 10)
}
