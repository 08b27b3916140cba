// Package core: Graph method implementations.
//
// Mutators hold the write lock, queries the read lock. Adjacency is a
// nested map with arc multiplicity, giving constant-time existence,
// insertion, and degree queries.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id and its adjacency buckets; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]int)
	g.in[id] = make(map[string]int)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddArc creates an arc from 'from' to 'to', creating missing endpoints
// (idempotent vertex insertion). Undirected graphs mirror the arc both ways.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, or ErrMultiArcNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to string) error {
	// 1. Input validation before any mutation.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2. Loop constraint.
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3. Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 4. Multi-arc constraint: a second arc over the same ordered pair
	//    (or either orientation when undirected) is rejected.
	if !g.allowMulti && g.out[from][to] > 0 {
		return ErrMultiArcNotAllowed
	}

	// 5. Record forward and reverse adjacency; mirror for undirected.
	g.out[from][to]++
	g.in[to][from]++
	if !g.directed && from != to {
		g.out[to][from]++
		g.in[from][to]++
	}

	return nil
}

// HasArc reports whether at least one arc from 'from' to 'to' exists.
// For undirected graphs the orientation of the query is irrelevant.
// Complexity: O(1).
func (g *Graph) HasArc(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[from][to] > 0
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Arcs returns every arc sorted by (From, To). Undirected edges are
// reported once, oriented lexicographically; parallel arcs are repeated
// per multiplicity.
// Complexity: O(A log A).
func (g *Graph) Arcs() []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Arc
	for from, heads := range g.out {
		for to, mult := range heads {
			// Mirrored storage: emit each undirected edge once.
			if !g.directed && from > to {
				continue
			}
			for i := 0; i < mult; i++ {
				out = append(out, Arc{From: from, To: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// ArcCount returns the number of arcs (undirected edges count once).
// Complexity: O(V + A).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for from, heads := range g.out {
		for to, mult := range heads {
			if !g.directed && from > to {
				continue
			}
			total += mult
		}
	}

	return total
}

// OutNeighbors returns the sorted IDs of vertices reachable from id by
// a single arc. Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(d log d).
func (g *Graph) OutNeighbors(id string) ([]string, error) {
	return g.neighbors(id, true)
}

// InNeighbors returns the sorted IDs of vertices with an arc into id.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) ([]string, error) {
	return g.neighbors(id, false)
}

func (g *Graph) neighbors(id string, outgoing bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	bucket := g.in[id]
	if outgoing {
		bucket = g.out[id]
	}
	ids := make([]string, 0, len(bucket))
	for v := range bucket {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// OutDegree returns the number of arcs leaving id (parallel arcs counted).
// Complexity: O(d).
func (g *Graph) OutDegree(id string) (int, error) {
	return g.degree(id, true)
}

// InDegree returns the number of arcs entering id (parallel arcs counted).
// Complexity: O(d).
func (g *Graph) InDegree(id string) (int, error) {
	return g.degree(id, false)
}

func (g *Graph) degree(id string, outgoing bool) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	bucket := g.in[id]
	if outgoing {
		bucket = g.out[id]
	}
	total := 0
	for _, mult := range bucket {
		total += mult
	}

	return total, nil
}

// Clone returns a deep copy of the Graph: capability flags, vertices,
// and adjacency. The clone shares no state with the receiver.
// Complexity: O(V + A).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		out:        make(map[string]map[string]int, len(g.out)),
		in:         make(map[string]map[string]int, len(g.in)),
	}
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for from, heads := range g.out {
		bucket := make(map[string]int, len(heads))
		for to, mult := range heads {
			bucket[to] = mult
		}
		clone.out[from] = bucket
	}
	for to, tails := range g.in {
		bucket := make(map[string]int, len(tails))
		for from, mult := range tails {
			bucket[from] = mult
		}
		clone.in[to] = bucket
	}

	return clone
}
