// Package: builder
//
// errors.go - sentinel errors. Constructors wrap them with method context;
// match with errors.Is.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic operation without an rng.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil constructor, missing data).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown variant or invalid option value.
var ErrOptionViolation = errors.New("builder: invalid option value")
