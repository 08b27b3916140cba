package augment_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjelinek/Robust-matching-augmentation/augment"
	"github.com/tjelinek/Robust-matching-augmentation/builder"
	"github.com/tjelinek/Robust-matching-augmentation/core"
	"github.com/tjelinek/Robust-matching-augmentation/scc"
)

func directed() []core.GraphOption {
	return []core.GraphOption{core.WithDirected(true)}
}

// mustBuild assembles a directed fixture and fails the test on error.
func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(directed(), nil, cons...)
	require.NoError(t, err)

	return g
}

// checkAugmentation runs StrongConnect on g and verifies the full
// contract: the set is minimum (its size matches LowerBound), every arc
// is new (AddArc on a simple graph rejects duplicates and loops), and
// the augmented graph is strongly connected. Returns the arc set.
func checkAugmentation(t *testing.T, g *core.Graph) []core.Arc {
	t.Helper()

	arcs, err := augment.StrongConnect(g)
	require.NoError(t, err)
	require.NotNil(t, arcs)

	cond, err := scc.Condense(g)
	require.NoError(t, err)
	assert.Len(t, arcs, augment.LowerBound(cond))

	h := g.Clone()
	for _, a := range arcs {
		require.NoError(t, h.AddArc(a.From, a.To), "arc %s->%s must be new", a.From, a.To)
	}
	strong, err := scc.IsStronglyConnected(h)
	require.NoError(t, err)
	assert.True(t, strong, "augmented graph must be strongly connected")

	return arcs
}

func TestStrongConnect_NilGraph(t *testing.T) {
	_, err := augment.StrongConnect(nil)
	assert.ErrorIs(t, err, augment.ErrNilGraph)
}

func TestStrongConnect_RejectsUnsupportedCategories(t *testing.T) {
	_, err := augment.StrongConnect(core.NewGraph(core.WithDirected(false)))
	assert.ErrorIs(t, err, augment.ErrUnsupportedGraph)

	multi := core.NewGraph(core.WithDirected(true), core.WithMultiArcs())
	_, err = augment.StrongConnect(multi)
	assert.ErrorIs(t, err, augment.ErrUnsupportedGraph)
}

func TestStrongConnect_TrivialGraphs(t *testing.T) {
	arcs, err := augment.StrongConnect(core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, arcs)
	assert.NotNil(t, arcs)

	arcs = checkAugmentation(t, mustBuild(t, builder.IsolatedVertices(1)))
	assert.Empty(t, arcs)
}

func TestStrongConnect_AlreadyStronglyConnected(t *testing.T) {
	arcs := checkAugmentation(t, mustBuild(t, builder.Cycle(6)))
	assert.Empty(t, arcs)
}

func TestStrongConnect_Paths(t *testing.T) {
	for n := 2; n <= 10; n++ {
		t.Run(fmt.Sprintf("P%d", n), func(t *testing.T) {
			arcs := checkAugmentation(t, mustBuild(t, builder.Path(n)))
			assert.Equal(t, []core.Arc{{From: fmt.Sprint(n - 1), To: "0"}}, arcs,
				"one arc from the sink back to the source closes the path")
		})
	}
}

func TestStrongConnect_IsolatedVerticesFormOneRing(t *testing.T) {
	for _, k := range []int{2, 3, 7} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			arcs := checkAugmentation(t, mustBuild(t, builder.IsolatedVertices(k)))
			assert.Len(t, arcs, k)
		})
	}
}

func TestStrongConnect_BalancedTrees(t *testing.T) {
	// Away from the root: one source, four sinks, four arcs needed.
	arcs := checkAugmentation(t, mustBuild(t, builder.BalancedTree(2, 2, false)))
	assert.Len(t, arcs, 4)

	// Toward the root: four sources, one sink, still four arcs.
	arcs = checkAugmentation(t, mustBuild(t, builder.BalancedTree(2, 2, true)))
	assert.Len(t, arcs, 4)
}

func TestStrongConnect_DisjointCycles(t *testing.T) {
	// Every copy condenses to an isolated node; one ring through all of
	// them suffices.
	arcs := checkAugmentation(t, mustBuild(t, builder.DisjointCycles(4, 3)))
	assert.Len(t, arcs, 4)
}

func TestStrongConnect_Matching(t *testing.T) {
	// k disjoint arcs: k sources, k sinks, no isolated nodes.
	arcs := checkAugmentation(t, mustBuild(t, builder.Matching(5)))
	assert.Len(t, arcs, 5)
}

func TestStrongConnect_MoreSourcesThanSinks(t *testing.T) {
	// Three sources feed one sink through a shared middle vertex, so the
	// construction runs against arc direction.
	g := core.NewGraph(core.WithDirected(true))
	for _, a := range []core.Arc{
		{From: "a", To: "m"},
		{From: "c", To: "m"},
		{From: "d", To: "m"},
		{From: "m", To: "b"},
	} {
		require.NoError(t, g.AddArc(a.From, a.To))
	}

	arcs := checkAugmentation(t, g)
	assert.Len(t, arcs, 3)
}

func TestStrongConnect_MixedSourcesSinksIsolated(t *testing.T) {
	// Two paths (2 sources, 2 sinks) plus three isolated vertices:
	// max(2,2)+3 = 5 arcs.
	arcs := checkAugmentation(t, mustBuild(t,
		builder.Path(3),
		builder.Path(4),
		builder.IsolatedVertices(3),
	))
	assert.Len(t, arcs, 5)
}

func TestStrongConnect_SelfLoopStaysInsideItsComponent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddArc("a", "a"))
	require.NoError(t, g.AddVertex("b"))

	arcs, err := augment.StrongConnect(g)
	require.NoError(t, err)
	assert.Len(t, arcs, 2, "both vertices condense to isolated nodes")
}

func TestStrongConnect_CondensedMode(t *testing.T) {
	dag := mustBuild(t, builder.Path(3))

	arcs, err := augment.StrongConnect(dag, augment.WithCondensed())
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{From: "2", To: "0"}}, arcs)
}

func TestStrongConnect_CondensedModeRejectsCycles(t *testing.T) {
	for name, build := range map[string]func(t *testing.T) *core.Graph{
		"three-cycle": func(t *testing.T) *core.Graph {
			return mustBuild(t, builder.Cycle(3), builder.IsolatedVertices(1))
		},
		"two-cycle": func(t *testing.T) *core.Graph {
			return mustBuild(t, builder.Cycle(2))
		},
		"self-loop": func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithDirected(true), core.WithLoops())
			require.NoError(t, g.AddArc("a", "a"))
			return g
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := augment.StrongConnect(build(t), augment.WithCondensed())
			assert.ErrorIs(t, err, scc.ErrHasCycle)
		})
	}
}

func TestStrongConnect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := augment.StrongConnect(mustBuild(t, builder.Path(3)), augment.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStrongConnect_DoesNotMutateInput(t *testing.T) {
	g := mustBuild(t, builder.Path(4))
	before := g.Arcs()

	_, err := augment.StrongConnect(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Arcs())
}

func TestStrongConnect_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Matching(4), builder.IsolatedVertices(2))

	first, err := augment.StrongConnect(g)
	require.NoError(t, err)
	second, err := augment.StrongConnect(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStrongConnect_RandomGraphs(t *testing.T) {
	// Sweep vertex counts from the degenerate single vertex upward and
	// densities from heavily fragmented to near complete; the small
	// instances hit corner shapes the hand-picked fixtures miss.
	densities := []float64{0.02, 0.1, 0.199, 0.399, 0.599, 0.799, 0.999}
	for n := 1; n <= 40; n++ {
		for _, p := range densities {
			t.Run(fmt.Sprintf("n=%d/p=%g", n, p), func(t *testing.T) {
				g, err := builder.BuildGraph(directed(),
					[]builder.Option{builder.WithSeed(int64(n)<<16 | int64(p*1000))},
					builder.RandomSparse(n, p),
				)
				require.NoError(t, err)

				checkAugmentation(t, g)
			})
		}
	}
}

// The pairing search recurses once per condensation node on path-like
// graphs; growable stacks make the depth a non-issue even at this size.
func TestStrongConnect_DeepPath(t *testing.T) {
	const n = 50_000
	arcs := checkAugmentation(t, mustBuild(t, builder.Path(n)))
	assert.Equal(t, []core.Arc{{From: fmt.Sprint(n - 1), To: "0"}}, arcs)
}

// randomDAG builds an acyclic directed graph: each pair (i, j) with
// i < j receives the arc i -> j with probability p, so no cycle can
// form and the graph doubles as its own condensation.
func randomDAG(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithDirected(true))
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprint(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddArc(fmt.Sprint(i), fmt.Sprint(j)))
			}
		}
	}

	return g
}

func TestStrongConnect_RandomCondensations(t *testing.T) {
	for n := 2; n <= 20; n++ {
		for _, p := range []float64{0.2, 0.5, 0.8} {
			t.Run(fmt.Sprintf("n=%d/p=%g", n, p), func(t *testing.T) {
				dag := randomDAG(t, n, p, int64(n)<<8|int64(p*100))

				arcs, err := augment.StrongConnect(dag, augment.WithCondensed())
				require.NoError(t, err)

				cond, err := scc.FromCondensation(dag)
				require.NoError(t, err)
				assert.Len(t, arcs, augment.LowerBound(cond))

				h := dag.Clone()
				for _, a := range arcs {
					require.NoError(t, h.AddArc(a.From, a.To))
				}
				strong, err := scc.IsStronglyConnected(h)
				require.NoError(t, err)
				assert.True(t, strong)
			})
		}
	}
}

func TestLowerBound(t *testing.T) {
	bound := func(t *testing.T, g *core.Graph) int {
		t.Helper()
		cond, err := scc.Condense(g)
		require.NoError(t, err)

		return augment.LowerBound(cond)
	}

	assert.Zero(t, bound(t, core.NewGraph(core.WithDirected(true))))
	assert.Zero(t, bound(t, mustBuild(t, builder.IsolatedVertices(1))))
	assert.Zero(t, bound(t, mustBuild(t, builder.Cycle(5))))
	assert.Equal(t, 1, bound(t, mustBuild(t, builder.Path(6))))
	assert.Equal(t, 3, bound(t, mustBuild(t, builder.IsolatedVertices(3))))
	assert.Equal(t, 4, bound(t, mustBuild(t, builder.BalancedTree(2, 2, false))))
	assert.Equal(t, 5, bound(t, mustBuild(t,
		builder.Path(3), builder.Path(4), builder.IsolatedVertices(3))))
}
