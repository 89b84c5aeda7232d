// Package assignments is the root of a small shortest-path toolkit built
// around an adjacency-matrix graph with described nodes.
//
// What is inside?
//
//	dijkstra/ — the all-pairs shortest-path graph: build, mutate, compute, report
//	matrix/   — Cost (finite or ∞), the bounds-checked Dense cost matrix, Floyd–Warshall
//	nodedata/ — NodeData, the one-line description carried by every node
//	builder/  — deterministic fixtures (path, cycle, complete, random sparse)
//
// Quick ASCII example:
//
//	 (1)──5──▶(2)──5──▶(3)
//	  └──────20───────▶┘
//
// The cheapest route 1→3 goes through 2 at cost 10, not over the direct edge.
//
//	go get github.com/Loer9999/C-S-S-3-4-3-Assignments/dijkstra
package assignments
