// This file declares Vertex identity, Arc, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiArcNotAllowed indicates a parallel arc was attempted when multi-arcs are disabled.
	ErrMultiArcNotAllowed = errors.New("core: multi-arcs not allowed")
)

// Arc is an ordered pair of vertex IDs. In an undirected graph an Arc
// records the endpoints in insertion order; direction carries no meaning.
type Arc struct {
	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether arcs are ordered pairs (true) or
// symmetric edges (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiArcs permits parallel arcs between the same endpoints.
func WithMultiArcs() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// out[u][v] and in[v][u] hold the multiplicity of the arc u->v; for
// undirected graphs every edge is mirrored in both directions of both
// maps. Multiplicity above 1 requires the multi-arc capability.
type Graph struct {
	mu sync.RWMutex

	// Capability flags, immutable after construction.
	directed   bool // arcs are ordered pairs
	allowMulti bool // allow parallel arcs
	allowLoops bool // allow self-loops

	vertices map[string]struct{}       // vertex ID set
	out      map[string]map[string]int // forward adjacency with multiplicity
	in       map[string]map[string]int // reverse adjacency with multiplicity
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, no loops, no multi-arcs.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]int),
		in:       make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether arcs are ordered pairs.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel arcs between the same endpoints
// are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
