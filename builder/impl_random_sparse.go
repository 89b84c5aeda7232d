// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparse(p): each ordered pair (u,v), u != v,
// is included independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is u asc, v asc, so a fixed seed gives a fixed edge list.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples a directed Erdős–Rényi-like edge set.
func RandomSparse(p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var u, v int
		for u = 1; u <= f.Count; u++ {
			for v = 1; v <= f.Count; v++ {
				if u == v {
					continue
				}
				switch {
				case p == probMax:
					addEdge(f, cfg, u, v)
				case p == probMin:
				case cfg.rng.Float64() < p:
					addEdge(f, cfg, u, v)
				}
			}
		}

		return nil
	}
}
