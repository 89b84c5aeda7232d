// Package dijkstra provides an all-pairs shortest-path graph: a fixed set of
// described nodes, positively weighted directed edges held in an adjacency
// matrix, and a table of shortest distances and predecessors computed by
// running Dijkstra's algorithm from every node.
//
// Overview:
//
//   - Nodes are numbered 1..NodeCount and each carries a nodedata.NodeData.
//   - Edges are directed, at most one per ordered pair, with weight > 0.
//     Absent edges are matrix.Inf, never a magic integer.
//   - FindShortestPaths fills the table T[source][dest] = {Visited, Dist, Path}.
//     The table is a cache: edge mutations leave it untouched until the next run.
//   - Path and Descriptions replay the predecessor chain for one pair;
//     AllPairs and Report turn the table into rows ready for display.
//
// Lifecycle:
//
//	g := dijkstra.New()
//	err := g.Build(3, []string{"A", "B", "C"}, []dijkstra.Triple{
//	    {From: 1, To: 2, Weight: 5},
//	    {From: 2, To: 3, Weight: 5},
//	    {From: 1, To: 3, Weight: 20},
//	    {}, // terminator
//	})
//	g.FindShortestPaths()
//	path, _ := g.Path(1, 3) // [1 2 3]
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrOutOfRange:       node index outside [1, NodeCount] ([1, Capacity] for Report).
//   - ErrInvalidWeight:    InsertEdge with weight ≤ 0.
//   - ErrAlreadyBuilt:     Initialize/Build on a populated graph.
//   - ErrNodeCount:        node count outside [1, Capacity].
//   - ErrDescriptionCount: Build count differs from the number of descriptions.
//   - ErrUnreachable:      Path/Descriptions between unconnected nodes.
//   - ErrBrokenPath:       predecessor chain does not return to the start.
//
// Every failing mutation leaves the graph unchanged. Build is lenient: bad edge
// triples are dropped and reported together through go.uber.org/multierr while
// the rest of the graph is loaded.
//
// Options:
//
//   - WithCapacity(n): maximum node count (default 100).
//   - WithLogger(l):   *zap.Logger for debug traces of each run (default no-op).
//
// Thread safety:
//
//   - A Graph is not safe for concurrent use; synchronize externally if needed.
//
// See also:
//
//   - matrix.FloydWarshall: an independent all-pairs closure, exposed as Graph.Closure.
//   - builder: deterministic fixtures in the bulk-load shape accepted by Build.
package dijkstra
