// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_topology.go — deterministic topologies: Path, Cycle, Complete.
//
// Edge order:
//   - Path/Cycle: i asc, edge i→i+1 (Cycle adds n→1 last).
//   - Complete: for each u asc, v asc, u != v.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minCycleVertices = 2
)

// Path adds the directed chain 1→2→…→n.
func Path() Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		for i := 1; i < f.Count; i++ {
			addEdge(f, cfg, i, i+1)
		}

		return nil
	}
}

// Cycle adds 1→2→…→n→1. Requires n ≥ 2.
func Cycle() Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if f.Count < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, f.Count, minCycleVertices, ErrTooFewVertices)
		}
		for i := 1; i < f.Count; i++ {
			addEdge(f, cfg, i, i+1)
		}
		addEdge(f, cfg, f.Count, 1)

		return nil
	}
}

// Complete adds every ordered pair u→v, u != v.
func Complete() Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		var u, v int
		for u = 1; u <= f.Count; u++ {
			for v = 1; v <= f.Count; v++ {
				if u != v {
					addEdge(f, cfg, u, v)
				}
			}
		}

		return nil
	}
}
