// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry points.
//
// Design contract:
//   - One orchestrator: BuildFixture(n, opts, cons...). Creates n described
//     nodes, resolves cfg, runs cons in order.
//   - Constructors only append edges; a later edge for the same (u,v)
//     overwrites an earlier one when loaded, exactly like InsertEdge.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical fixtures.

package builder

import (
	"fmt"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/dijkstra"
)

// Fixture is a decoded bulk-load description.
type Fixture struct {
	Count        int
	Descriptions []string
	Edges        []dijkstra.Triple
}

// Terminated returns the edge list with the (0,0,0) sentinel appended.
func (f Fixture) Terminated() []dijkstra.Triple {
	out := make([]dijkstra.Triple, len(f.Edges), len(f.Edges)+1)
	copy(out, f.Edges)

	return append(out, dijkstra.Triple{})
}

// Constructor appends edges over the fixture's nodes 1..f.Count.
// Constructors validate early and return sentinel errors; they never panic.
type Constructor func(f *Fixture, cfg builderConfig) error

// BuildFixture creates n nodes described by the configured description
// function and applies every constructor in order.
// Any constructor error is wrapped with "BuildFixture: %w".
func BuildFixture(n int, opts []Option, cons ...Constructor) (Fixture, error) {
	if n < 1 {
		return Fixture{}, fmt.Errorf("BuildFixture: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	f := Fixture{Count: n, Descriptions: make([]string, n)}
	for i := 1; i <= n; i++ {
		f.Descriptions[i-1] = cfg.descFn(i)
	}

	for i, fn := range cons {
		if fn == nil {
			return Fixture{}, fmt.Errorf("BuildFixture: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&f, cfg); err != nil {
			return Fixture{}, fmt.Errorf("BuildFixture: %w", err)
		}
	}

	return f, nil
}

// Load builds g from f, including the terminator. The error is whatever
// dijkstra.Graph.Build returns.
func Load(g *dijkstra.Graph, f Fixture) error {
	return g.Build(f.Count, f.Descriptions, f.Terminated())
}

// addEdge appends u→v with a weight from cfg.
func addEdge(f *Fixture, cfg builderConfig, u, v int) {
	f.Edges = append(f.Edges, dijkstra.Triple{From: u, To: v, Weight: cfg.weightFn(cfg.rng)})
}
