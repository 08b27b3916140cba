// Package cli implements the augmentarcs command-line interface.
//
// The tool reads a directed graph as a plain arc list, computes the
// minimum set of arcs whose addition makes the graph strongly connected,
// and prints that set one arc per line. A classify subcommand reports the
// source/sink/isolated structure of the condensation instead.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// Execute runs the augmentarcs CLI with the given context and returns
// the first command error.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "augmentarcs",
		Short:        "augmentarcs makes directed graphs strongly connected with a minimum number of new arcs",
		Long: `augmentarcs reads a directed graph as an arc list ("tail head" per line,
"#" starts a comment, a single token declares a lone vertex), computes a
minimum set of arcs whose addition makes the graph strongly connected,
and writes the new arcs to stdout in the same format.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("augmentarcs %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAugmentCmd())
	root.AddCommand(newClassifyCmd())

	return root.ExecuteContext(ctx)
}

// newLogger creates a stderr logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a distinct type for context keys, preventing collisions with
// other packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the logger attached.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger installed by withLogger, or the
// package default when none is attached.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}
