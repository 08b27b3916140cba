// Package augment computes a minimum set of new arcs whose addition makes
// a directed graph strongly connected (strong-connectivity augmentation,
// after Eswaran and Tarjan).
//
// What:
//
//   - StrongConnect(g, opts...): decompose g into its condensation (or
//     accept a caller-asserted condensation via WithCondensed), classify
//     condensation nodes into sources, sinks, and isolated nodes, and
//     construct an augmenting arc set of provably minimum cardinality:
//     max(s,t)+q arcs in general, q arcs when every node is isolated,
//     zero arcs for graphs that are already strongly connected.
//   - Classify(c): partition condensation nodes by in/out-degree into
//     sources, sinks, isolated, and interior nodes.
//   - LowerBound(c): the Eswaran-Tarjan lower bound on the number of arcs
//     any augmentation must add; StrongConnect always meets it exactly.
//
// Why:
//   - Turning a dependency or flow network into a single strongly
//     connected component with as few new links as possible: network
//     hardening, round-trip routing, test-reachability closure.
//
// How (construction sketch):
//
//	Sources are greedily paired with sinks they reach by existing paths.
//	The pairs are chained into one cycle; each leftover sink is matched
//	against a leftover source so both anchor into that cycle; remaining
//	sinks and all isolated nodes are spliced into the closing chain of
//	the cycle. Every added arc leaves a sink or isolated node, so no
//	added arc can duplicate an existing arc or form a self-loop. When
//	sinks are scarcer than sources, the same construction runs against
//	arc direction and the result is flipped.
//
// Returned arcs connect representative vertices chosen during
// decomposition; no new vertex identities are introduced, the input
// graph is never mutated, and nothing is cached between calls.
// Several distinct minimum sets usually exist; which one is returned is
// deterministic for equal inputs but otherwise unspecified.
//
// Complexity:
//
//   - Classify:      Time O(N log N), Memory O(N)    (N condensation nodes)
//   - StrongConnect: Time O(V + A) for decomposition plus the pairing
//     sweep, worst case O(s·(N + C)) on the condensation
//     (C condensation arcs), Memory O(V).
//
// Errors:
//
//   - ErrNilGraph          graph pointer is nil
//   - ErrUnsupportedGraph  graph category not supported (undirected or
//     multi-arc graphs are rejected before any computation)
//   - scc.ErrHasCycle      WithCondensed was set but the graph has a cycle
//   - context.Canceled     canceled via WithContext
package augment
