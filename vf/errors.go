package vf

import "github.com/cockroachdb/errors"

// Sentinel errors. A search that finds nothing is not an error.
var (
	// ErrNilLoader indicates that one of the two graphs is nil.
	ErrNilLoader = errors.New("vf: nil graph loader")

	// ErrSearchStarted indicates a State was asked to search a second time.
	// A State can be driven to exhaustion once; build a new one to search again.
	ErrSearchStarted = errors.New("vf: search already started on this state")

	// ErrUnknownMode indicates a Mode value other than Isomorphism or Subgraph.
	ErrUnknownMode = errors.New("vf: unknown match mode")

	// ErrInvalidMaxMatches indicates a negative match limit.
	ErrInvalidMaxMatches = errors.New("vf: max matches must be >= 0")
)
