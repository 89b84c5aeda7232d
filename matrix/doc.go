// Package matrix offers the dense, bounds-checked cost matrix used by the
// shortest-path engine, together with the optional distance value it stores.
//
// The matrix package provides:
//
//   - Cost, an explicit "finite value or infinity" distance. Its zero value is
//     Inf, so a freshly allocated matrix describes a graph with no edges.
//   - Dense, a square n×n row-major matrix of Cost with At/Set accessors that
//     return ErrOutOfRange instead of panicking.
//   - FloydWarshall, an in-place all-pairs closure with a fixed k→i→j loop
//     order. It serves as an independent cross-check for Dijkstra results.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V³) closure time are acceptable.
package matrix
