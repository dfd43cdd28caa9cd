// Package: builder
//
// validators.go - shared parameter checks.

package builder

import (
	"github.com/cockroachdb/errors"
)

func validateMin(method string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, got, min)
	}

	return nil
}

func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return errors.Wrapf(ErrTooFewVertices, "%s: partition sizes must be ≥ %d, got %d and %d",
			method, MinPartition, n1, n2)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
			method, p, MinProbability, MaxProbability)
	}

	return nil
}
