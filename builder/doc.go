// Package builder produces deterministic graph fixtures in the decoded
// bulk-load shape accepted by dijkstra.Graph.Build: a node count, one
// description per node, and a list of (from, to, weight) edge triples.
//
// Constructors (Path, Cycle, Complete, RandomSparse) are composed with
// BuildFixture; options control descriptions, weights and randomness.
// The same inputs, options and seed always yield the same fixture.
package builder
