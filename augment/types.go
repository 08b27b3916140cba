// Package augment: options and sentinel errors.
package augment

import (
	"context"
	"errors"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to StrongConnect.
	ErrNilGraph = errors.New("augment: graph is nil")

	// ErrUnsupportedGraph indicates the input is not a simple directed
	// graph: undirected graphs and multigraphs are rejected eagerly,
	// before any computation.
	ErrUnsupportedGraph = errors.New("augment: graph category not supported")
)

// Option configures optional behavior of StrongConnect.
type Option func(*options)

// options holds configurable parameters for one StrongConnect call.
type options struct {
	// ctx allows cancellation; defaults to context.Background().
	ctx context.Context

	// condensed, if true, treats the input directly as a condensation
	// DAG, skipping decomposition and validating acyclicity instead.
	condensed bool
}

// defaultOptions returns the default options: background context,
// full decomposition.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithCondensed returns an Option asserting the input graph already is a
// condensation DAG. Decomposition is skipped; if the graph turns out to
// contain a cycle, StrongConnect fails with scc.ErrHasCycle.
func WithCondensed() Option {
	return func(o *options) {
		o.condensed = true
	}
}
