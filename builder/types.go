// This file declares the builder configuration, its functional options,
// and the package sentinel errors.
package builder

import (
	"errors"
	"math/rand"
	"strconv"
)

// ErrTooFewVertices reports a size parameter below the constructor's
// minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability reports a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource reports a stochastic constructor invoked without a
// seeded random source; use WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor reports a nil Constructor passed to BuildGraph.
var ErrNilConstructor = errors.New("builder: nil constructor")

// IDFn maps a vertex ordinal to its string ID.
type IDFn func(i int) string

// config is the resolved, immutable builder configuration.
type config struct {
	idFn IDFn
	rng  *rand.Rand
}

// Option adjusts the builder configuration.
type Option func(*config)

// newConfig resolves options over the defaults: decimal vertex IDs and
// no random source.
func newConfig(opts ...Option) config {
	cfg := config{idFn: strconv.Itoa}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithIDScheme replaces the vertex ID mapping. A nil fn keeps the
// default.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed installs a deterministic random source for the stochastic
// constructors.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
