// Package nodedata defines NodeData, the one-line text description carried by
// every node of a shortest-path graph.
//
// The engine treats NodeData as opaque: it stores it, hands it back along
// reconstructed paths, and renders it. Equality and lexicographic ordering are
// provided for callers that sort or index descriptions.
package nodedata

import (
	"strings"
)

// NodeData is an immutable single line of text.
type NodeData struct {
	text string
}

// New returns a NodeData holding s up to its first line break.
// A trailing "\r" (from CRLF input) is dropped.
func New(s string) NodeData {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	return NodeData{text: strings.TrimSuffix(s, "\r")}
}

// FromLines converts each string with New, preserving order.
func FromLines(lines []string) []NodeData {
	out := make([]NodeData, len(lines))
	for i, l := range lines {
		out[i] = New(l)
	}

	return out
}

// String returns the description text.
func (d NodeData) String() string { return d.text }

// Equal reports whether d and o hold the same text.
func (d NodeData) Equal(o NodeData) bool { return d.text == o.text }

// Less reports whether d sorts strictly before o.
func (d NodeData) Less(o NodeData) bool { return d.text < o.text }

// Compare returns -1, 0 or +1 as d sorts before, equal to, or after o.
func (d NodeData) Compare(o NodeData) int { return strings.Compare(d.text, o.text) }
