// Package core provides a thread-safe in-memory directed-graph container
// with a minimal, composable API surface.
//
// The Graph G = (V,A) stores opaque string vertex IDs and ordered vertex
// pairs (arcs). Behavior is fixed at construction time through options:
//
//   - Directed vs. undirected arcs (WithDirected)
//   - Parallel arcs / multigraphs (WithMultiArcs)
//   - Self-loops (WithLoops)
//
// Why use core.Graph?
//
//   - Single type, composable capability flags; algorithms can gate on
//     Directed(), Multigraph(), Looped() once at their entry point instead
//     of scattering runtime type checks.
//   - Deterministic iteration: Vertices(), Arcs(), OutNeighbors() and
//     InNeighbors() all return sorted results.
//   - Reverse adjacency is maintained alongside forward adjacency, so
//     InDegree and InNeighbors are as cheap as their out-counterparts.
//   - Clone support for algorithms that must not mutate their input.
//
// Errors:
//
//	ErrEmptyVertexID      - vertex ID is the empty string.
//	ErrVertexNotFound     - requested vertex does not exist.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrMultiArcNotAllowed - parallel arc when multi-arcs are disabled.
//
// Concurrency: a single sync.RWMutex guards all state; mutators take the
// write lock, queries the read lock. Distinct Graph values share nothing.
package core
