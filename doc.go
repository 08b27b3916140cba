// Package augmentation makes directed graphs strongly connected with the
// minimum possible number of new arcs.
//
// 🚀 What is this module?
//
//	A thread-safe toolkit around one classic question: given a directed
//	graph, which arcs must be added so that every vertex reaches every
//	other? It brings together:
//		• Core primitives: a lock-guarded directed graph with deterministic iteration
//		• Condensation: Tarjan's strongly-connected-component decomposition
//		• Augmentation: a minimum arc set of size max(sources, sinks) + isolated
//		• Builders: deterministic fixtures (paths, trees, random sparse graphs)
//		• CLI: augmentarcs, an arc-list in / arc-list out command-line tool
//
// ✨ Why choose it?
//
//   - Provably minimum – the returned set always matches the lower bound
//   - Deterministic – same graph in, same arcs out, every run
//   - Rock-solid guarantees – R/W locks, sentinel errors, no panics
//
// Everything is organized under five subpackages:
//
//	core/    — the Graph container, Arc type & thread-safe primitives
//	scc/     — condensation, acyclicity validation, strong-connectivity checks
//	augment/ — classification of the condensation & the augmenting arc set
//	builder/ — composable deterministic graph constructors
//	cmd/     — the augmentarcs command-line front end
//
// Quick ASCII example:
//
//	A──▶B──▶C        augment.StrongConnect returns {C→A},
//	                 turning the path into a cycle.
//
// Start with augment.StrongConnect; everything else supports it.
package augmentation
