// Package scc: validation path for caller-supplied condensations.
package scc

import "github.com/tjelinek/Robust-matching-augmentation/core"

// FromCondensation treats g directly as a condensation DAG, skipping the
// decomposition pass. Acyclicity is validated first: any cycle, including
// a single self-loop or a mutual 2-cycle, fails fast with ErrHasCycle.
// On success the returned Condensation carries the identity partition:
// every vertex is the representative of its own singleton component.
//
// The caller is responsible for passing a true condensation; this check
// confirms no two declared components are mutually reachable, which for a
// node-per-component graph reduces to cycle detection.
// Complexity: O(V + A) time, O(V) memory.
func FromCondensation(g *core.Graph) (*Condensation, error) {
	// 1. Validate input category.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// 2. Three-color DFS over every vertex: a gray-to-gray arc is a cycle.
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	for _, v := range verts {
		if state[v] == white {
			if err := visitAcyclic(g, v, state); err != nil {
				return nil, err
			}
		}
	}

	// 3. Identity partition: each vertex represents itself.
	members := make(map[string][]string, len(verts))
	componentOf := make(map[string]string, len(verts))
	for _, v := range verts {
		members[v] = []string{v}
		componentOf[v] = v
	}

	return &Condensation{DAG: g.Clone(), Members: members, ComponentOf: componentOf}, nil
}

// visitAcyclic is the recursive three-color reachability check.
// A self-loop arrives at its own gray origin and is reported as a cycle.
func visitAcyclic(g *core.Graph, v string, state map[string]int) error {
	state[v] = gray
	heads, err := g.OutNeighbors(v)
	if err != nil {
		return err
	}
	for _, w := range heads {
		switch state[w] {
		case gray:
			return ErrHasCycle
		case white:
			if err = visitAcyclic(g, w, state); err != nil {
				return err
			}
		}
	}
	state[v] = black

	return nil
}
