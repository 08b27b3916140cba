package augment_test

import (
	"fmt"

	"github.com/tjelinek/Robust-matching-augmentation/augment"
	"github.com/tjelinek/Robust-matching-augmentation/core"
)

// ExampleStrongConnect augments a directed path into a cycle.
// Graph structure:
//
//	A -> B -> C -> D
//
// The only source is A and the only sink is D, so a single arc D -> A
// makes the graph strongly connected.
func ExampleStrongConnect() {
	g := core.NewGraph(core.WithDirected(true))

	// AddArc creates missing vertices automatically.
	for _, arc := range []struct{ U, V string }{
		{"A", "B"}, {"B", "C"}, {"C", "D"},
	} {
		_ = g.AddArc(arc.U, arc.V)
	}

	arcs, err := augment.StrongConnect(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range arcs {
		fmt.Printf("%s -> %s\n", a.From, a.To)
	}

	// Output:
	// D -> A
}

// ExampleStrongConnect_isolated connects vertices with no arcs at all.
// Three isolated vertices need three arcs, one cycle through all of them.
func ExampleStrongConnect_isolated() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"X", "Y", "Z"} {
		_ = g.AddVertex(id)
	}

	arcs, err := augment.StrongConnect(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range arcs {
		fmt.Printf("%s -> %s\n", a.From, a.To)
	}

	// Output:
	// X -> Y
	// Y -> Z
	// Z -> X
}
