package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tjelinek/Robust-matching-augmentation/augment"
	"github.com/tjelinek/Robust-matching-augmentation/scc"
)

// newAugmentCmd builds the augment subcommand: read a graph, compute the
// minimum augmenting arc set, print it.
func newAugmentCmd() *cobra.Command {
	var condensed bool

	cmd := &cobra.Command{
		Use:   "augment [file]",
		Short: "Print a minimum set of new arcs that makes the graph strongly connected",
		Long: `Augment reads a directed graph from the given file (or stdin when the
argument is omitted or "-") and prints a minimum-cardinality set of new
arcs whose addition makes the graph strongly connected, one "tail head"
pair per line. An already strongly connected graph prints nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			g, err := ReadGraph(in)
			if err != nil {
				return err
			}
			log.Debug("graph loaded", "vertices", g.VertexCount(), "arcs", g.ArcCount())

			opts := []augment.Option{augment.WithContext(cmd.Context())}
			if condensed {
				opts = append(opts, augment.WithCondensed())
			}
			arcs, err := augment.StrongConnect(g, opts...)
			if err != nil {
				return err
			}
			log.Debug("augmentation computed", "new_arcs", len(arcs))

			out := cmd.OutOrStdout()
			for _, a := range arcs {
				fmt.Fprintf(out, "%s %s\n", a.From, a.To)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&condensed, "condensed", false,
		"treat the input as an already condensed acyclic graph")

	return cmd
}

// newClassifyCmd builds the classify subcommand: report the condensation
// structure and the augmentation lower bound without computing the arcs.
func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file]",
		Short: "Report sources, sinks, and isolated components of the condensation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			g, err := ReadGraph(in)
			if err != nil {
				return err
			}

			cond, err := scc.Condense(g)
			if err != nil {
				return err
			}
			cls := augment.Classify(cond)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components: %d\n", cond.Size())
			fmt.Fprintf(out, "sources:    %d\n", cls.S())
			fmt.Fprintf(out, "sinks:      %d\n", cls.T())
			fmt.Fprintf(out, "isolated:   %d\n", cls.Q())
			fmt.Fprintf(out, "bound:      %d\n", augment.LowerBound(cond))

			return nil
		},
	}
}
