// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p): directed Erdős–Rényi G(n, p).
//
// Every ordered pair (i, j), i ≠ j, becomes an edge with probability p.
// Pairs are visited in (i asc, j asc) order with one rng draw each, so a
// fixed seed yields a fixed graph. Self-loops are drawn only on graphs
// created WithLoops.

package builder

import (
	"github.com/cockroachdb/errors"
)

// RandomSparse returns a Constructor for a random directed graph.
// An rng is required unless p is exactly 0 or 1.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomSparse)
		}

		ids, err := addVerticesWithIDFn(MethodRandomSparse, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		loops := g.Looped()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !draw(cfg, p) {
					continue
				}
				if err = link(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// draw reports whether a pair is selected with probability p.
func draw(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
