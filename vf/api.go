package vf

// Match returns the first match of g2 in g1.
// ok is false when no match exists; err reports invalid input only.
func Match[V, E any](g1, g2 GraphLoader[V, E], opts ...Option) (m Mapping, ok bool, err error) {
	st, err := NewState(g1, g2, opts...)
	if err != nil {
		return Mapping{}, false, err
	}

	return st.Match()
}

// MatchAll collects every match of g2 in g1, up to WithMaxMatches if set.
// The result is empty, not nil, when no match exists.
func MatchAll[V, E any](g1, g2 GraphLoader[V, E], opts ...Option) ([]Mapping, error) {
	st, err := NewState(g1, g2, opts...)
	if err != nil {
		return nil, err
	}
	en, err := st.Matches()
	if err != nil {
		return nil, err
	}

	out := make([]Mapping, 0)
	for m := range en.All() {
		out = append(out, m)
	}

	return out, nil
}

// Isomorphic reports whether g1 and g2 are isomorphic. Any WithMode in opts
// is overridden.
func Isomorphic[V, E any](g1, g2 GraphLoader[V, E], opts ...Option) (bool, error) {
	_, ok, err := Match(g1, g2, append(opts, WithMode(Isomorphism))...)
	return ok, err
}

// SubgraphIsomorphic reports whether g2 embeds into g1. Any WithMode in opts
// is overridden.
func SubgraphIsomorphic[V, E any](g1, g2 GraphLoader[V, E], opts ...Option) (bool, error) {
	_, ok, err := Match(g1, g2, append(opts, WithMode(Subgraph))...)
	return ok, err
}
