// Package scc: Tarjan strongly-connected-component decomposition and
// condensation construction.
package scc

import (
	"fmt"
	"sort"

	"github.com/tjelinek/Robust-matching-augmentation/core"
)

// tarjan encapsulates state for one decomposition pass.
type tarjan struct {
	graph   *core.Graph
	counter int            // next DFS index to assign
	index   map[string]int // vertex -> DFS index
	lowlink map[string]int // vertex -> smallest index reachable
	onStack map[string]bool
	stack   []string
	comps   [][]string // collected components, reverse topological order
}

// Condense decomposes g into its strongly connected components and returns
// the condensation: a directed acyclic graph with one node per component,
// tagged with a representative original vertex, plus the vertex partition.
//
// The representative of a component is its lexicographically smallest
// member; this is an implementation choice, not a contract, and callers
// must not rely on which member is picked.
//
// The input graph is never mutated; every call allocates fresh structures.
// Returns ErrNilGraph or ErrNotDirected on invalid input.
// Complexity: O(V + A) time, O(V) memory.
func Condense(g *core.Graph) (*Condensation, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// 2. Run Tarjan from every unvisited vertex in sorted order.
	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int, len(verts)),
		lowlink: make(map[string]int, len(verts)),
		onStack: make(map[string]bool, len(verts)),
	}
	for _, v := range verts {
		if _, visited := t.index[v]; !visited {
			if err := t.strongConnect(v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Elect representatives and build the partition.
	members := make(map[string][]string, len(t.comps))
	componentOf := make(map[string]string, len(verts))
	for _, comp := range t.comps {
		sort.Strings(comp)
		rep := comp[0]
		members[rep] = comp
		for _, v := range comp {
			componentOf[v] = rep
		}
	}

	// 4. Build the component DAG: an arc between two condensation nodes
	//    iff some original arc crosses from the first component to the
	//    second. Intra-component arcs (including self-loops) are dropped.
	dag := core.NewGraph(core.WithDirected(true))
	for rep := range members {
		if err := dag.AddVertex(rep); err != nil {
			return nil, fmt.Errorf("scc: Condense: AddVertex(%q): %w", rep, err)
		}
	}
	for _, v := range verts {
		heads, err := g.OutNeighbors(v)
		if err != nil {
			return nil, fmt.Errorf("scc: Condense: OutNeighbors(%q): %w", v, err)
		}
		from := componentOf[v]
		for _, w := range heads {
			to := componentOf[w]
			if from == to || dag.HasArc(from, to) {
				continue
			}
			if err = dag.AddArc(from, to); err != nil {
				return nil, fmt.Errorf("scc: Condense: AddArc(%q,%q): %w", from, to, err)
			}
		}
	}

	return &Condensation{DAG: dag, Members: members, ComponentOf: componentOf}, nil
}

// strongConnect performs the recursive Tarjan visit rooted at v: assign a
// DFS index, push v, propagate lowlinks from descendants, and pop a whole
// component once v proves to be its root.
func (t *tarjan) strongConnect(v string) error {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	heads, err := t.graph.OutNeighbors(v)
	if err != nil {
		return fmt.Errorf("scc: OutNeighbors(%q): %w", v, err)
	}
	for _, w := range heads {
		if _, visited := t.index[w]; !visited {
			if err = t.strongConnect(w); err != nil {
				return err
			}
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] && t.index[w] < t.lowlink[v] {
			t.lowlink[v] = t.index[w]
		}
	}

	// v is the root of a component: pop the stack down to v.
	if t.lowlink[v] == t.index[v] {
		var comp []string
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			comp = append(comp, top)
			if top == v {
				break
			}
		}
		t.comps = append(t.comps, comp)
	}

	return nil
}
