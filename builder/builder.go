package builder

import (
	"fmt"

	"github.com/tjelinek/Robust-matching-augmentation/core"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved configuration. Constructors validate their parameters before
// touching the graph and number new vertices from the current vertex
// count, so BuildGraph can stack them without ID collisions.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a graph with the given core options, resolves the
// builder options, and applies the constructors in order. The first
// constructor error aborts the build; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Path builds the path P_n: arcs i -> i+1 for n >= 2 vertices. On a
// directed graph the condensation has one source and one sink.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
		}

		return chain(g, cfg, n, false)
	}
}

// Cycle builds the cycle C_n: arcs i -> i+1 plus the closing arc, for
// n >= 2 vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
		}

		return chain(g, cfg, n, true)
	}
}

// chain adds n fresh vertices connected consecutively, optionally closed
// into a ring.
func chain(g *core.Graph, cfg config, n int, closed bool) error {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(base + i)); err != nil {
			return err
		}
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddArc(cfg.idFn(base+i), cfg.idFn(base+i+1)); err != nil {
			return err
		}
	}
	if closed {
		return g.AddArc(cfg.idFn(base+n-1), cfg.idFn(base))
	}

	return nil
}

// IsolatedVertices adds n >= 1 fresh vertices with no arcs.
func IsolatedVertices(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("IsolatedVertices(%d): %w", n, ErrTooFewVertices)
		}
		base := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(base + i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// BalancedTree builds the complete rooted tree with the given branching
// factor (>= 2) and height (>= 1, counted in arc levels). Vertices are
// numbered level by level with the root first. Arcs point from parent to
// child; with toRoot they point from child to parent instead, turning
// the one-source tree into a one-sink tree.
func BalancedTree(branching, height int, toRoot bool) Constructor {
	return func(g *core.Graph, cfg config) error {
		if branching < 2 || height < 1 {
			return fmt.Errorf("BalancedTree(%d,%d): %w", branching, height, ErrTooFewVertices)
		}

		// Total node count: (b^(h+1) - 1) / (b - 1).
		total := 1
		for level, width := 0, 1; level < height; level++ {
			width *= branching
			total += width
		}

		base := g.VertexCount()
		for i := 0; i < total; i++ {
			if err := g.AddVertex(cfg.idFn(base + i)); err != nil {
				return err
			}
		}
		for child := 1; child < total; child++ {
			parent := (child - 1) / branching
			from, to := cfg.idFn(base+parent), cfg.idFn(base+child)
			if toRoot {
				from, to = to, from
			}
			if err := g.AddArc(from, to); err != nil {
				return err
			}
		}

		return nil
	}
}

// DisjointCycles builds count >= 1 vertex-disjoint copies of C_length.
func DisjointCycles(count, length int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if count < 1 {
			return fmt.Errorf("DisjointCycles(%d,%d): %w", count, length, ErrTooFewVertices)
		}
		for i := 0; i < count; i++ {
			if err := Cycle(length)(g, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Matching builds pairs >= 1 disjoint arcs 2k -> 2k+1. On a directed
// graph every tail is a source and every head is a sink.
func Matching(pairs int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if pairs < 1 {
			return fmt.Errorf("Matching(%d): %w", pairs, ErrTooFewVertices)
		}
		base := g.VertexCount()
		for k := 0; k < pairs; k++ {
			if err := g.AddArc(cfg.idFn(base+2*k), cfg.idFn(base+2*k+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdos-Renyi style graph on n >= 1 fresh
// vertices: each ordered pair (unordered on undirected graphs) receives
// an arc independently with probability p. Requires WithSeed.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse(%d,%g): %w", n, p, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse(%d,%g): %w", n, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse(%d,%g): %w", n, p, ErrNeedRandSource)
		}

		base := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(base + i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !g.Directed() && j < i {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := g.AddArc(cfg.idFn(base+i), cfg.idFn(base+j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
