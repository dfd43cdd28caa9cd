// Package: builder
//
// options.go - functional options resolving into builderConfig.
//
// Option constructors panic on programmer errors (nil functions or sources),
// matching the fail-fast policy of the rest of the package API.

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex labeling function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBidirectional makes every emitted edge a pair of opposite edges.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithPartitionPrefix sets bipartite side label prefixes; empty keeps the default.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
