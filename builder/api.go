// Package: builder
//
// api.go - public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors only see a Sink, so they work for any core.Graph[V, E]
//     instantiation and leave attributes at their zero value.
//   - Vertices are addressed by label. A constructor that meets a label that
//     already exists reuses that vertex, so constructors compose.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/vflib/core"
)

// Sink is the mutation surface constructors need. *core.Graph[V, E]
// satisfies it for every V and E.
type Sink interface {
	AddBlankVertex(label string) (int, error)
	VertexByLabel(label string) (int, bool)
	Connect(from, to int) error
	HasEdge(from, to int) bool
	Looped() bool
}

// Constructor applies a deterministic topology to g using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g Sink, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph" and returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph[V, E any](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[V, E], error) {
	g := core.NewGraph[V, E](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}
