package dijkstra

import (
	"fmt"
	"slices"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/nodedata"
)

// Path returns the node sequence start…end (inclusive) recorded by the last
// FindShortestPaths run. Path(s, s) is [s].
//
// Errors:
//   - ErrOutOfRange if start or end is not in [1, NodeCount].
//   - ErrUnreachable if T[start][end].Dist is Inf.
//   - ErrBrokenPath if the predecessor chain does not lead back to start.
func (g *Graph) Path(start, end int) ([]int, error) {
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	if err := g.checkNode(end); err != nil {
		return nil, err
	}

	return g.walk(start, end)
}

// walk follows T[start][*].Path backwards from end and returns the reversed
// chain. Bounds must already be checked.
func (g *Graph) walk(start, end int) ([]int, error) {
	row := g.t[start-1]
	if row[end-1].Dist.IsInf() {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, start, end)
	}

	n := len(g.data)
	seq := []int{end}
	for cur := end; cur != start; {
		cur = row[cur-1].Path
		// A valid chain visits each node at most once.
		if cur == 0 || len(seq) >= n {
			return nil, fmt.Errorf("%w: %d→%d", ErrBrokenPath, start, end)
		}
		seq = append(seq, cur)
	}
	slices.Reverse(seq)

	return seq, nil
}

// Descriptions returns the descriptions of the nodes along Path(start, end).
// Errors are those of Path.
func (g *Graph) Descriptions(start, end int) ([]nodedata.NodeData, error) {
	seq, err := g.Path(start, end)
	if err != nil {
		return nil, err
	}

	return g.describe(seq), nil
}

func (g *Graph) describe(seq []int) []nodedata.NodeData {
	out := make([]nodedata.NodeData, len(seq))
	for i, v := range seq {
		out[i] = g.data[v-1]
	}

	return out
}
