package vf

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/vflib/logger"
)

// Mode selects the relation a match must satisfy.
type Mode uint8

const (
	// Isomorphism requires a bijection between all vertices of G1 and G2.
	Isomorphism Mode = iota
	// Subgraph requires an injection of every vertex of G2 into G1 that
	// preserves edges and non-edges among the matched vertices. Only edges
	// to unmatched G1 vertices may be extra.
	Subgraph
)

// String returns the lower-case mode name used in logs and flags.
func (m Mode) String() string {
	switch m {
	case Isomorphism:
		return "isomorphism"
	case Subgraph:
		return "subgraph"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "isomorphism", "iso":
		return Isomorphism, nil
	case "subgraph", "sub":
		return Subgraph, nil
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// StatsObserver receives the counters of a search once it ends, whether by
// exhaustion, by reaching the match limit, or by Stop.
type StatsObserver interface {
	ObserveSearch(mode Mode, stats Stats)
}

// Options is the resolved configuration of one search.
type Options struct {
	// Mode is Isomorphism or Subgraph.
	Mode Mode
	// ContextCheck enables ContextChecker on vertex and edge attributes.
	ContextCheck bool
	// MaxMatches stops enumeration after that many matches; 0 means no limit.
	MaxMatches int
	// Logger receives debug traces of the search.
	Logger logger.Logger
	// Observer, when set, is notified with the final Stats.
	Observer StatsObserver
}

// Option mutates Options.
type Option func(*Options)

var defaultLogger = sync.OnceValue(func() logger.Logger {
	return logger.NewLogger("WARNING", "vf")
})

// DefaultOptions returns exact isomorphism, no context check, no limit.
func DefaultOptions() Options {
	return Options{
		Mode:   Isomorphism,
		Logger: defaultLogger(),
	}
}

// WithMode selects Isomorphism or Subgraph matching.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithContextCheck toggles attribute compatibility checks.
func WithContextCheck(enabled bool) Option {
	return func(o *Options) { o.ContextCheck = enabled }
}

// WithMaxMatches caps the number of matches an enumeration yields.
func WithMaxMatches(n int) Option {
	return func(o *Options) { o.MaxMatches = n }
}

// WithLogger replaces the default WARNING-level "vf" logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStatsObserver registers an observer for the final search counters.
func WithStatsObserver(obs StatsObserver) Option {
	return func(o *Options) { o.Observer = obs }
}

// resolveOptions applies opts over DefaultOptions and validates the result.
func resolveOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Mode != Isomorphism && o.Mode != Subgraph {
		return o, errors.Wrapf(ErrUnknownMode, "mode %d", o.Mode)
	}
	if o.MaxMatches < 0 {
		return o, errors.Wrapf(ErrInvalidMaxMatches, "max=%d", o.MaxMatches)
	}

	return o, nil
}
