// Package scc: shared types and sentinel errors.
package scc

import (
	"errors"

	"github.com/tjelinek/Robust-matching-augmentation/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Condense,
	// FromCondensation, or IsStronglyConnected.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrNotDirected indicates the supplied graph lacks directed semantics.
	ErrNotDirected = errors.New("scc: directed graph required")

	// ErrHasCycle indicates a graph asserted to be a condensation
	// contains a cycle.
	ErrHasCycle = errors.New("scc: graph has a cycle")
)

// Vertex visitation states for the acyclicity check.
const (
	white = iota // not visited yet
	gray         // in the recursion stack
	black        // fully explored
)

// Condensation is the DAG obtained by contracting each strongly connected
// component of a directed graph to a single node. Condensation nodes are
// identified by their representative vertex ID, so arcs of DAG are directly
// expressible in terms of the original vertex set.
//
// A Condensation is a derived, read-only artifact; callers must not mutate
// its fields.
type Condensation struct {
	// DAG holds one vertex per component (named by representative) and an
	// arc between two components iff some original arc crosses them.
	DAG *core.Graph

	// Members maps each representative to the sorted vertices of its
	// component. Singleton components map to a one-element slice.
	Members map[string][]string

	// ComponentOf maps every original vertex to its representative.
	ComponentOf map[string]string
}

// Size returns the number of condensation nodes.
func (c *Condensation) Size() int {
	return c.DAG.VertexCount()
}

// Representatives returns the sorted representative IDs of all components.
func (c *Condensation) Representatives() []string {
	return c.DAG.Vertices()
}
