// Package: builder
//
// config.go - resolved builder configuration.

package builder

import (
	"math/rand"
)

// builderConfig is immutable once resolved by newBuilderConfig.
type builderConfig struct {
	// idFn labels the i-th vertex a constructor creates.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// bidirectional adds v→u for every u→v a constructor emits.
	bidirectional bool

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L" // bipartite left side label
	defaultRightPrefix = "R" // bipartite right side label
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
