// Package builder assembles deterministic core.Graph fixtures from small
// composable constructors.
//
// What:
//
//	BuildGraph(gopts, bopts, cons...) creates a graph with the given core
//	options, resolves the builder configuration, and applies each
//	Constructor in order. Constructors cover the standard shapes used
//	throughout this module: Path, Cycle, IsolatedVertices, BalancedTree,
//	DisjointCycles, Matching, and RandomSparse.
//
// Why:
//
//	Connectivity experiments need many graphs whose source, sink, and
//	isolated structure is known in advance. Building them by hand repeats
//	the same loops in every test; building them here keeps the loops in
//	one place and the fixtures reproducible.
//
// Determinism:
//
//	Same constructors, options, and seed produce the identical graph.
//	Each constructor numbers its vertices from the current vertex count,
//	so constructors compose without ID collisions.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrNilConstructor. Constructors never panic.
package builder
