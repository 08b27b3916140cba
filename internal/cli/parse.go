package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tjelinek/Robust-matching-augmentation/core"
)

// ErrBadLine reports an input line that is neither a comment, a lone
// vertex, nor a "tail head" arc.
var ErrBadLine = errors.New("cli: malformed input line")

// ReadGraph parses the arc-list format from r into a directed graph.
//
// Format, one record per line:
//
//	# comment, also allowed after a record
//	a        a lone vertex with no arcs
//	a b      an arc from a to b
//
// Blank lines are skipped. Duplicate arcs and self-loops are rejected by
// the graph itself.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("cli: line %d: %w", lineNo, err)
			}
		case 2:
			if err := g.AddArc(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("cli: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("cli: line %d: %d fields: %w", lineNo, len(fields), ErrBadLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cli: read input: %w", err)
	}

	return g, nil
}

// openInput returns the input reader for the command: the named file, or
// cmd's stdin for "-" or no argument. The returned closer is always safe
// to call.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("cli: open input: %w", err)
	}

	return f, f.Close, nil
}
