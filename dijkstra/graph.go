package dijkstra

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/nodedata"
)

// Graph is a directed, positively weighted graph over nodes 1..NodeCount,
// stored as an adjacency matrix, together with the all-pairs shortest-path
// table produced by the last FindShortestPaths run.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	opts  Options
	log   *zap.Logger
	data  []nodedata.NodeData // data[i-1] describes node i
	c     *matrix.Dense       // c[u-1][v-1] = weight of u→v, Inf if absent
	t     [][]Entry           // t[s-1][d-1] = T[s][d]
	stale bool                // an edge changed since the last run
}

// New returns an empty Graph configured by opts.
func New(opts ...Option) *Graph {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{opts: cfg, log: cfg.Logger}
}

// NodeCount returns the number of nodes, 0 for an empty graph.
func (g *Graph) NodeCount() int { return len(g.data) }

// Capacity returns the configured maximum node count.
func (g *Graph) Capacity() int { return g.opts.Capacity }

// Stale reports whether an edge was inserted or removed since the last
// FindShortestPaths run. Edge mutations never touch the table itself.
func (g *Graph) Stale() bool { return g.stale }

// Initialize populates an empty graph with one node per description, in order.
// Node i gets descriptions[i-1]. No edges are created.
//
// Errors:
//   - ErrAlreadyBuilt if the graph already has nodes (graph unchanged).
//   - ErrNodeCount if len(descriptions) is not in [1, Capacity].
func (g *Graph) Initialize(descriptions []string) error {
	if len(g.data) > 0 {
		return ErrAlreadyBuilt
	}
	n := len(descriptions)
	if n < 1 || n > g.opts.Capacity {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrNodeCount, n, g.opts.Capacity)
	}

	c, err := matrix.NewDense(n)
	if err != nil {
		return fmt.Errorf("dijkstra: allocate adjacency: %w", err)
	}

	// The table starts with T[s][s].Dist = 0 and everything else unreached.
	t := make([][]Entry, n)
	for s := range t {
		t[s] = make([]Entry, n)
		t[s][s].Dist = matrix.Zero
	}

	g.data = nodedata.FromLines(descriptions)
	g.c = c
	g.t = t
	g.stale = false

	return nil
}

// Build loads a decoded bulk description: a node count, that many
// descriptions, then edge triples terminated by the (0, 0, 0) sentinel.
// Triples after the sentinel are ignored; a missing sentinel means all
// triples are applied.
//
// If count or descriptions are rejected, the graph is left untouched and the
// error (ErrDescriptionCount, ErrAlreadyBuilt, ErrNodeCount) is returned.
// Otherwise every triple that InsertEdge rejects is dropped, and the returned
// error combines one error per dropped triple (see multierr.Errors); the
// graph is fully built either way.
func (g *Graph) Build(count int, descriptions []string, edges []Triple) error {
	if count != len(descriptions) {
		return fmt.Errorf("%w: count=%d, descriptions=%d", ErrDescriptionCount, count, len(descriptions))
	}
	if err := g.Initialize(descriptions); err != nil {
		return err
	}

	var errs error
	for i, e := range edges {
		if e.IsSentinel() {
			break
		}
		if err := g.InsertEdge(e.From, e.To, e.Weight); err != nil {
			g.log.Warn("dropping edge",
				zap.Int("line", i),
				zap.Int("from", e.From),
				zap.Int("to", e.To),
				zap.Int64("weight", e.Weight),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("edge %d (%d→%d, w=%d): %w", i, e.From, e.To, e.Weight, err))
		}
	}

	return errs
}

// checkNode validates a 1-based node index against the live node count.
func (g *Graph) checkNode(i int) error {
	if i < 1 || i > len(g.data) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, i, len(g.data))
	}

	return nil
}

// InsertEdge adds or overwrites the directed edge u→v with weight.
// The matrix is unchanged on error.
//
// Errors: ErrOutOfRange (u or v not in [1, NodeCount]), ErrInvalidWeight (weight ≤ 0).
func (g *Graph) InsertEdge(u, v int, weight int64) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrInvalidWeight, u, v, weight)
	}
	if err := g.c.Set(u-1, v-1, matrix.Finite(weight)); err != nil {
		return err
	}
	g.stale = true

	return nil
}

// RemoveEdge deletes the edge u→v. Removing an absent edge succeeds.
//
// Errors: ErrOutOfRange (u or v not in [1, NodeCount]).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if err := g.c.Set(u-1, v-1, matrix.Inf); err != nil {
		return err
	}
	g.stale = true

	return nil
}

// EdgeWeight returns the weight of u→v, or matrix.Inf if there is no edge.
func (g *Graph) EdgeWeight(u, v int) (matrix.Cost, error) {
	if err := g.checkNode(u); err != nil {
		return matrix.Inf, err
	}
	if err := g.checkNode(v); err != nil {
		return matrix.Inf, err
	}

	return g.c.At(u-1, v-1)
}

// edge reads u→v without validation; callers guarantee the bounds.
func (g *Graph) edge(u, v int) matrix.Cost {
	c, _ := g.c.At(u-1, v-1)
	return c
}

// Edges returns every present edge in ascending (From, To) order.
func (g *Graph) Edges() []Triple {
	var out []Triple
	n := len(g.data)
	for u := 1; u <= n; u++ {
		for v := 1; v <= n; v++ {
			if w, ok := g.edge(u, v).Value(); ok {
				out = append(out, Triple{From: u, To: v, Weight: w})
			}
		}
	}

	return out
}

// Description returns the description of node i.
func (g *Graph) Description(i int) (nodedata.NodeData, error) {
	if err := g.checkNode(i); err != nil {
		return nodedata.NodeData{}, err
	}

	return g.data[i-1], nil
}

// Entry returns the table cell T[source][dest] as left by the last run.
func (g *Graph) Entry(source, dest int) (Entry, error) {
	if err := g.checkNode(source); err != nil {
		return Entry{}, err
	}
	if err := g.checkNode(dest); err != nil {
		return Entry{}, err
	}

	return g.t[source-1][dest-1], nil
}
