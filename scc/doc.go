// Package scc computes strongly connected components and condensations
// of directed core.Graphs.
//
// What:
//
//   - Condense: contracts every strongly connected component (SCC) of a
//     directed graph into a single condensation node, producing an acyclic
//     component DAG plus the vertex partition. Each component is identified
//     by a representative vertex, the lexicographically smallest member.
//   - FromCondensation: accepts a graph the caller asserts to already be a
//     condensation, validates acyclicity (failing fast with ErrHasCycle on
//     any cycle, including self-loops and 2-cycles), and wraps it with the
//     identity partition.
//   - IsStronglyConnected: reports whether every vertex reaches every other
//     vertex; graphs with fewer than two vertices are vacuously strongly
//     connected.
//
// Why:
//   - Condensations reduce reachability questions on arbitrary digraphs to
//     questions on DAGs, the precondition for connectivity augmentation.
//
// Complexity:
//
//   - Condense:             Time O(V + A), Memory O(V)   (Tarjan, one pass)
//   - FromCondensation:     Time O(V + A), Memory O(V)   (three-color DFS)
//   - IsStronglyConnected:  Time O(V + A), Memory O(V)   (forward + reverse BFS)
//
// Errors:
//
//   - ErrNilGraph     graph pointer is nil
//   - ErrNotDirected  the graph does not have directed semantics
//   - ErrHasCycle     asserted condensation contains a cycle
//
// Determinism: components, representatives, and condensation arcs are
// derived from sorted vertex and neighbor iteration, so equal inputs
// produce identical condensations.
package scc
