// Package augment: structural classification of condensation nodes.
package augment

import "github.com/tjelinek/Robust-matching-augmentation/scc"

// Classification partitions the nodes of a condensation by their degrees:
// sources have no incoming arcs, sinks no outgoing arcs, isolated nodes
// neither, interior nodes both. Every node lands in exactly one list, and
// each list is sorted. A Classification is recomputed fresh per call and
// never cached.
type Classification struct {
	// Sources are condensation nodes with in-degree 0 and out-degree > 0.
	Sources []string

	// Sinks are condensation nodes with out-degree 0 and in-degree > 0.
	Sinks []string

	// Isolated are condensation nodes with no arcs in either direction.
	Isolated []string

	// Interior are condensation nodes with both degrees positive.
	Interior []string
}

// S returns the number of non-isolated sources.
func (c Classification) S() int { return len(c.Sources) }

// T returns the number of non-isolated sinks.
func (c Classification) T() int { return len(c.Sinks) }

// Q returns the number of isolated nodes.
func (c Classification) Q() int { return len(c.Isolated) }

// Classify tags every condensation node as source, sink, isolated, or
// interior based on its degrees in the condensation DAG. Pure function of
// the condensation; the input is not modified.
//
// A condensation with zero or one nodes yields an all-empty classification
// as far as the augmentation is concerned; the single-node case is
// special-cased by the constructor, which returns no arcs regardless of
// how that node would nominally classify.
// Complexity: O(N log N) over N condensation nodes.
func Classify(c *scc.Condensation) Classification {
	var cls Classification
	if c.Size() <= 1 {
		return cls
	}
	for _, rep := range c.DAG.Vertices() {
		// The vertex was just listed by the DAG, so degree lookups
		// cannot fail.
		in, _ := c.DAG.InDegree(rep)
		out, _ := c.DAG.OutDegree(rep)
		switch {
		case in == 0 && out == 0:
			cls.Isolated = append(cls.Isolated, rep)
		case in == 0:
			cls.Sources = append(cls.Sources, rep)
		case out == 0:
			cls.Sinks = append(cls.Sinks, rep)
		default:
			cls.Interior = append(cls.Interior, rep)
		}
	}

	return cls
}
