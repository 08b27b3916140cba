package augment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjelinek/Robust-matching-augmentation/augment"
	"github.com/tjelinek/Robust-matching-augmentation/builder"
	"github.com/tjelinek/Robust-matching-augmentation/core"
	"github.com/tjelinek/Robust-matching-augmentation/scc"
)

// classify condenses g and classifies the result.
func classify(t *testing.T, g *core.Graph) augment.Classification {
	t.Helper()
	cond, err := scc.Condense(g)
	require.NoError(t, err)

	return augment.Classify(cond)
}

func TestClassify_SingleComponentIsTrivial(t *testing.T) {
	cls := classify(t, mustBuild(t, builder.Cycle(4)))

	assert.Zero(t, cls.S())
	assert.Zero(t, cls.T())
	assert.Zero(t, cls.Q())
	assert.Empty(t, cls.Interior)
}

func TestClassify_Path(t *testing.T) {
	cls := classify(t, mustBuild(t, builder.Path(5)))

	assert.Equal(t, []string{"0"}, cls.Sources)
	assert.Equal(t, []string{"4"}, cls.Sinks)
	assert.Empty(t, cls.Isolated)
	assert.Equal(t, []string{"1", "2", "3"}, cls.Interior)
}

func TestClassify_MixedShapes(t *testing.T) {
	// A matching, a cycle, and loose vertices: the cycle condenses to a
	// single isolated node represented by its smallest member.
	cls := classify(t, mustBuild(t,
		builder.Matching(2),        // vertices 0..3
		builder.Cycle(3),           // vertices 4..6
		builder.IsolatedVertices(2), // vertices 7..8
	))

	assert.Equal(t, []string{"0", "2"}, cls.Sources)
	assert.Equal(t, []string{"1", "3"}, cls.Sinks)
	assert.Equal(t, []string{"4", "7", "8"}, cls.Isolated)
	assert.Empty(t, cls.Interior)
	assert.Equal(t, 2, cls.S())
	assert.Equal(t, 2, cls.T())
	assert.Equal(t, 3, cls.Q())
}

func TestClassify_OrderIsSorted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, a := range []core.Arc{
		{From: "z", To: "m"},
		{From: "b", To: "m"},
		{From: "m", To: "a"},
		{From: "m", To: "y"},
	} {
		require.NoError(t, g.AddArc(a.From, a.To))
	}

	cls := classify(t, g)
	assert.Equal(t, []string{"b", "z"}, cls.Sources)
	assert.Equal(t, []string{"a", "y"}, cls.Sinks)
	assert.Equal(t, []string{"m"}, cls.Interior)
}
