// Package dijkstra defines the errors, options and value types of the
// all-pairs shortest-path graph.
//
// Errors (sentinel):
//
//	– ErrOutOfRange       if a node index is outside the valid range for the call.
//	– ErrInvalidWeight    if an edge weight is zero or negative.
//	– ErrAlreadyBuilt     if Initialize/Build is called on a populated graph.
//	– ErrNodeCount        if the node count is outside [1, Capacity].
//	– ErrDescriptionCount if Build's count disagrees with its description list.
//	– ErrUnreachable      if a path is requested between unconnected nodes.
//	– ErrBrokenPath       if the predecessor chain does not lead back to the start.
package dijkstra

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Loer9999/C-S-S-3-4-3-Assignments/matrix"
	"github.com/Loer9999/C-S-S-3-4-3-Assignments/nodedata"
)

// Sentinel errors returned by Graph methods.
var (
	// ErrOutOfRange indicates a node index outside [1, NodeCount] (or [1, Capacity] for Report).
	ErrOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrInvalidWeight indicates an edge weight ≤ 0.
	ErrInvalidWeight = errors.New("dijkstra: edge weight must be positive")

	// ErrAlreadyBuilt indicates construction was attempted on a non-empty graph.
	ErrAlreadyBuilt = errors.New("dijkstra: graph already built")

	// ErrNodeCount indicates a node count outside [1, Capacity].
	ErrNodeCount = errors.New("dijkstra: node count out of range")

	// ErrDescriptionCount indicates the declared node count differs from the
	// number of descriptions supplied.
	ErrDescriptionCount = errors.New("dijkstra: description count mismatch")

	// ErrUnreachable indicates no path exists between two valid nodes.
	// It is a query result, not a failure of the graph.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBrokenPath indicates the recorded predecessor chain did not return to
	// the start within NodeCount steps.
	ErrBrokenPath = errors.New("dijkstra: broken predecessor chain")
)

// DefaultCapacity is the largest node count a Graph accepts unless
// WithCapacity says otherwise.
const DefaultCapacity = 100

// Options configures a Graph.
//
// Capacity – upper bound on the node count, and the index bound used by Report.
// Logger   – receives debug traces of each computation run; never nil.
type Options struct {
	Capacity int
	Logger   *zap.Logger
}

// Option represents a functional option for configuring a Graph.
type Option func(*Options)

// WithCapacity sets the maximum node count. Panics if n < 1.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(fmt.Sprintf("dijkstra: capacity must be positive, got %d", n))
		}
		o.Capacity = n
	}
}

// WithLogger routes diagnostic output to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Capacity=DefaultCapacity and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		Logger:   zap.NewNop(),
	}
}

// Triple is one decoded edge line "u v weight" of the bulk-load format.
// The all-zero Triple terminates an edge list.
type Triple struct {
	From, To int
	Weight   int64
}

// IsSentinel reports whether t is the (0, 0, 0) terminator.
func (t Triple) IsSentinel() bool { return t == Triple{} }

// Entry is one cell of the shortest-path table T[source][dest].
type Entry struct {
	Visited bool        // finalized during the last run for this source
	Dist    matrix.Cost // best known total weight; Inf if unreached
	Path    int         // predecessor on the best path; 0 for none/self
}

// Unreachable is the marker rendered for pairs with no path.
const Unreachable = "---"

// Row is one line of a shortest-path report.
type Row struct {
	Description  nodedata.NodeData   // description of From
	From, To     int                 // 1-based node indices
	Dist         matrix.Cost         // Inf when unreachable
	Path         []int               // From…To inclusive; nil when unreachable
	Descriptions []nodedata.NodeData // filled by Report only
}

// Reachable reports whether a path From→To exists.
func (r Row) Reachable() bool { return !r.Dist.IsInf() }

// String renders "from\tto\tdist\tn1 n2 …", or "from\tto\t---".
func (r Row) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%d\t", r.From, r.To)
	if !r.Reachable() {
		b.WriteString(Unreachable)
		return b.String()
	}
	fmt.Fprintf(&b, "%s\t", r.Dist)
	for i, v := range r.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}

	return b.String()
}
