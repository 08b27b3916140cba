// Package scc: whole-graph strong-connectivity predicate.
package scc

import "github.com/tjelinek/Robust-matching-augmentation/core"

// IsStronglyConnected reports whether every vertex of g reaches every
// other vertex via directed paths. Graphs with zero or one vertex are
// vacuously strongly connected.
//
// Implemented as two breadth-first sweeps from an arbitrary root: one
// along arcs, one against them. The graph is strongly connected iff both
// sweeps cover all vertices.
// Complexity: O(V + A) time, O(V) memory.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}

	verts := g.Vertices()
	if len(verts) <= 1 {
		return true, nil
	}

	root := verts[0]
	forward, err := sweep(g, root, (*core.Graph).OutNeighbors)
	if err != nil {
		return false, err
	}
	if forward != len(verts) {
		return false, nil
	}
	backward, err := sweep(g, root, (*core.Graph).InNeighbors)
	if err != nil {
		return false, err
	}

	return backward == len(verts), nil
}

// sweep runs a BFS from root using the supplied neighbor accessor and
// returns the number of vertices reached.
func sweep(g *core.Graph, root string, next func(*core.Graph, string) ([]string, error)) (int, error) {
	seen := map[string]bool{root: true}
	queue := []string{root}
	for qi := 0; qi < len(queue); qi++ {
		heads, err := next(g, queue[qi])
		if err != nil {
			return 0, err
		}
		for _, w := range heads {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return len(seen), nil
}
