// Package augment: the minimum augmenting-arc constructor.
package augment

import (
	"fmt"

	"github.com/tjelinek/Robust-matching-augmentation/core"
	"github.com/tjelinek/Robust-matching-augmentation/scc"
)

// StrongConnect returns a minimum-cardinality set of new arcs whose
// addition to g makes it strongly connected. The arc endpoints are
// representative vertices of distinct strongly connected components of g,
// so they already exist in g; no returned arc duplicates an existing arc
// or forms a self-loop. The empty and one-component graphs yield an
// empty, non-nil set.
//
// With WithCondensed, g itself is treated as the condensation DAG and
// only validated for acyclicity. The input graph is never mutated; the
// caller decides whether to apply the returned arcs.
//
// Returns ErrNilGraph, ErrUnsupportedGraph, scc.ErrHasCycle (condensed
// mode only), or the context error when canceled.
func StrongConnect(g *core.Graph, opts ...Option) ([]core.Arc, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Capability gate, once at the entry point: the algorithm is
	//    defined for simple directed graphs only.
	if !g.Directed() || g.Multigraph() {
		return nil, ErrUnsupportedGraph
	}

	// 3. Apply options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.ctx.Err(); err != nil {
		return nil, err
	}

	// 4. Reduce to the condensation, or validate the asserted one.
	var (
		cond *scc.Condensation
		err  error
	)
	if o.condensed {
		cond, err = scc.FromCondensation(g)
	} else {
		cond, err = scc.Condense(g)
	}
	if err != nil {
		return nil, err
	}

	// 5. Trivial case: a graph with at most one component is already
	//    (vacuously or actually) strongly connected.
	if cond.Size() <= 1 {
		return []core.Arc{}, nil
	}
	if err = o.ctx.Err(); err != nil {
		return nil, err
	}

	// 6. Classify and construct.
	return construct(o, cond, Classify(cond))
}

// LowerBound returns the minimum number of arcs any augmentation must add
// to make the condensed graph strongly connected: max(s,t)+q in general,
// q when every node is isolated, 0 for at most one node. StrongConnect
// returns exactly this many arcs.
func LowerBound(c *scc.Condensation) int {
	cls := Classify(c)
	s, t, q := cls.S(), cls.T(), cls.Q()
	if s+t+q > 1 {
		return max(s, t) + q
	}
	// s > 0 iff t > 0, so here s == t == 0 and at most one isolated node.
	return 0
}

// construct builds the augmenting arc set for a condensation with more
// than one node. All case analysis of the augmentation lives here.
func construct(o options, cond *scc.Condensation, cls Classification) ([]core.Arc, error) {
	// Pure-isolation case: no sources and no sinks means every node is
	// isolated. One cycle through all of them gives each node the one
	// incoming and one outgoing arc it needs, at q arcs total.
	if cls.S() == 0 && cls.T() == 0 {
		return ring(cls.Isolated), nil
	}

	// General case. The construction pairs sources with sinks they reach
	// and runs in the orientation with fewer sources; when sinks are the
	// scarcer side, it works against arc direction on the same DAG and
	// flips every emitted arc, which preserves both cardinality and
	// strong connectivity of the result.
	srcs, snks := cls.Sources, cls.Sinks
	step := (*core.Graph).OutNeighbors
	flip := false
	if len(srcs) > len(snks) {
		srcs, snks = cls.Sinks, cls.Sources
		step = (*core.Graph).InNeighbors
		flip = true
	}

	pairedSrc, pairedSnk, freeSrc, freeSnk, err := pairByReachability(o, cond.DAG, srcs, snks, step)
	if err != nil {
		return nil, err
	}
	// The first search runs with every sink still unpaired and every
	// source reaches some sink, so at least one pair always exists here.
	p := len(pairedSrc)

	arcs := make([]core.Arc, 0, max(cls.S(), cls.T())+cls.Q())
	emit := func(from, to string) {
		if flip {
			from, to = to, from
		}
		arcs = append(arcs, core.Arc{From: from, To: to})
	}

	// 1. Chain the reachability pairs into one long path:
	//    src_1 ~> snk_1 -> src_2 ~> snk_2 -> ... ~> snk_p.
	for i := 0; i < p-1; i++ {
		emit(pairedSnk[i], pairedSrc[i+1])
	}

	// 2. Match every unpaired source with its own unpaired sink. Each
	//    such sink is reachable from some paired source and each such
	//    source reaches some sink with an outgoing new arc, so both ends
	//    anchor into the main cycle.
	for k := 0; k < len(freeSrc); k++ {
		emit(freeSnk[k], freeSrc[k])
	}

	// 3. Close the main cycle from snk_p back to src_1, splicing the
	//    leftover sinks and all isolated nodes into the closing chain.
	//    Every splice adds exactly one net arc, keeping the total at
	//    max(s,t)+q.
	chain := make([]string, 0, len(freeSnk)-len(freeSrc)+cls.Q())
	chain = append(chain, freeSnk[len(freeSrc):]...)
	chain = append(chain, cls.Isolated...)
	prev := pairedSnk[p-1]
	for _, node := range chain {
		emit(prev, node)
		prev = node
	}
	emit(prev, pairedSrc[0])

	return arcs, nil
}

// ring connects the given nodes into a single directed cycle.
func ring(nodes []string) []core.Arc {
	arcs := make([]core.Arc, 0, len(nodes))
	for i, node := range nodes {
		next := nodes[(i+1)%len(nodes)]
		arcs = append(arcs, core.Arc{From: node, To: next})
	}

	return arcs
}

// sinkSearch holds the state of the greedy source-to-sink pairing sweep.
//
// A per-source depth-first search looks for the first sink not yet
// paired. Successful searches leave no trace; a failed search proved
// that nothing reachable from its origin can ever pair again (paired
// sinks never unpair), so its entire visited set is marked dead and
// skipped by later searches.
type sinkSearch struct {
	dag     *core.Graph
	step    func(*core.Graph, string) ([]string, error)
	sinkSet map[string]bool // candidate sinks
	paired  map[string]bool // sinks already matched
	dead    map[string]bool // exhausted by failed searches

	visited map[string]bool // scratch, reset per search
	found   string
}

// pairByReachability greedily pairs each source, in order, with a sink it
// reaches by existing paths. Returns the paired sources and sinks in
// matching order, plus the leftover sources and sinks in their original
// order.
func pairByReachability(
	o options,
	dag *core.Graph,
	sources, sinks []string,
	step func(*core.Graph, string) ([]string, error),
) (pairedSrc, pairedSnk, freeSrc, freeSnk []string, err error) {
	search := &sinkSearch{
		dag:     dag,
		step:    step,
		sinkSet: make(map[string]bool, len(sinks)),
		paired:  make(map[string]bool, len(sinks)),
		dead:    make(map[string]bool),
	}
	for _, w := range sinks {
		search.sinkSet[w] = true
	}

	for _, v := range sources {
		if err = o.ctx.Err(); err != nil {
			return nil, nil, nil, nil, err
		}
		w, serr := search.run(v)
		if serr != nil {
			return nil, nil, nil, nil, serr
		}
		if w == "" {
			freeSrc = append(freeSrc, v)
			continue
		}
		pairedSrc = append(pairedSrc, v)
		pairedSnk = append(pairedSnk, w)
		search.paired[w] = true
	}
	for _, w := range sinks {
		if !search.paired[w] {
			freeSnk = append(freeSnk, w)
		}
	}

	return pairedSrc, pairedSnk, freeSrc, freeSnk, nil
}

// run searches from v and returns the first unpaired sink found, or ""
// when none is reachable.
func (s *sinkSearch) run(v string) (string, error) {
	s.visited = make(map[string]bool)
	s.found = ""
	ok, err := s.walk(v)
	if err != nil {
		return "", err
	}
	if !ok {
		// Conclusive failure: everything seen here stays barren.
		for u := range s.visited {
			s.dead[u] = true
		}

		return "", nil
	}

	return s.found, nil
}

// walk is the recursive depth-first step; it reports whether an unpaired
// sink was found below u.
func (s *sinkSearch) walk(u string) (bool, error) {
	s.visited[u] = true
	if s.sinkSet[u] && !s.paired[u] {
		s.found = u

		return true, nil
	}
	heads, err := s.step(s.dag, u)
	if err != nil {
		return false, fmt.Errorf("augment: neighbors of %q: %w", u, err)
	}
	for _, w := range heads {
		if s.visited[w] || s.dead[w] {
			continue
		}
		ok, werr := s.walk(w)
		if werr != nil || ok {
			return ok, werr
		}
	}

	return false, nil
}
