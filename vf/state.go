package vf

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/vflib/logger"
)

// sideState is everything a State tracks about one of its two graphs.
type sideState[V, E any] struct {
	g *workingGraph[V, E]

	// Classification index sets. out holds FromMapping vertices, in holds
	// ToMapping vertices, disc holds Disconnected vertices.
	in, out, disc *indexSet

	// Running totals moved in step with in and out by makeMove.
	inTotal, outTotal int

	// mapping[i] is the counterpart of working index i on the other side, or Unset.
	mapping []int
}

func newSideState[V, E any](g *workingGraph[V, E]) sideState[V, E] {
	s := sideState[V, E]{
		g:       g,
		in:      newIndexSet(),
		out:     newIndexSet(),
		disc:    newIndexSet(),
		mapping: make([]int, g.vertexCount()),
	}
	for i := range s.mapping {
		s.mapping[i] = Unset
		s.disc.add(i)
	}

	return s
}

// State is the search state of one matching problem between G1 and G2.
//
// A State is single-use: Matches or Match may be called once, and the
// returned Enumerator must be driven from one goroutine.
type State[V, E any] struct {
	sides [2]sideState[V, E]

	opts Options
	log  logger.Logger
	// cmp compares a G1 quantity with the corresponding G2 quantity:
	// equality for Isomorphism, G1 >= G2 for Subgraph.
	cmp func(n1, n2 int) bool

	started bool
}

// NewState prepares a search for matches of g2 in g1.
//
// Errors:
//   - ErrNilLoader: g1 or g2 is nil.
//   - ErrUnknownMode, ErrInvalidMaxMatches: invalid options.
//
// Complexity: O((V+E) + V log V) per graph.
func NewState[V, E any](g1, g2 GraphLoader[V, E], opts ...Option) (*State[V, E], error) {
	if g1 == nil || g2 == nil {
		return nil, ErrNilLoader
	}
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newStateWithGraphs(newWorkingGraph(g1, nil), newWorkingGraph(g2, nil), o), nil
}

func newStateWithGraphs[V, E any](wg1, wg2 *workingGraph[V, E], o Options) *State[V, E] {
	st := &State[V, E]{
		opts: o,
		log:  o.Logger,
		cmp:  equalDegrees,
	}
	if o.Mode == Subgraph {
		st.cmp = coveringDegrees
	}
	st.sides[side1] = newSideState(wg1)
	st.sides[side2] = newSideState(wg2)

	return st
}

func equalDegrees(n1, n2 int) bool    { return n1 == n2 }
func coveringDegrees(n1, n2 int) bool { return n1 >= n2 }

// Options returns the resolved configuration.
func (st *State[V, E]) Options() Options { return st.opts }

// Matches starts the search and returns a lazy enumerator over every match.
//
// Errors:
//   - ErrSearchStarted: Matches or Match was already called on st.
func (st *State[V, E]) Matches() (*Enumerator[V, E], error) {
	if st.started {
		return nil, errors.WithStack(ErrSearchStarted)
	}
	st.started = true

	return &Enumerator[V, E]{st: st}, nil
}

// Match returns the first match, if any, and ends the search.
func (st *State[V, E]) Match() (Mapping, bool, error) {
	en, err := st.Matches()
	if err != nil {
		return Mapping{}, false, err
	}
	m, ok := en.Next()
	en.Stop()

	return m, ok, nil
}

// groupOf returns the classification of i on side.
func (st *State[V, E]) groupOf(side, i int) Group {
	return st.sides[side].g.group(i)
}

// makeMove reclassifies i on side as g. Bits leaving the group remove i from
// the matching index set and decrement its total; bits entering add and
// increment. ContainedInMapping has no index set. Calling it again with the
// same g is a no-op.
func (st *State[V, E]) makeMove(side, i int, g Group) {
	s := &st.sides[side]
	cur := s.g.group(i)
	removed := cur &^ g
	added := g &^ cur

	if removed.Has(Disconnected) {
		s.disc.remove(i)
	}
	if removed.Has(FromMapping) {
		s.out.remove(i)
		s.outTotal--
	}
	if removed.Has(ToMapping) {
		s.in.remove(i)
		s.inTotal--
	}

	if added.Has(Disconnected) {
		s.disc.add(i)
	}
	if added.Has(FromMapping) {
		s.out.add(i)
		s.outTotal++
	}
	if added.Has(ToMapping) {
		s.in.add(i)
		s.inTotal++
	}

	s.g.setGroup(i, g)
}

func (st *State[V, E]) setMapping(i1, i2 int) {
	st.sides[side1].mapping[i1] = i2
	st.sides[side2].mapping[i2] = i1
}

func (st *State[V, E]) clearMapping(side, i int) {
	st.sides[side].mapping[i] = Unset
}

// completeMatch reports whether every G2 vertex is in the mapping.
func (st *State[V, E]) completeMatch() bool {
	s := &st.sides[side2]
	return s.in.size() == 0 && s.out.size() == 0 && s.disc.size() == 0
}

// compatibleDegrees compares vertex counts and then the two degree
// sequences index by index. Both sequences are sorted descending, so in
// Subgraph mode the i-th largest G1 degree must cover the i-th largest G2
// degree.
func (st *State[V, E]) compatibleDegrees() bool {
	g1, g2 := st.sides[side1].g, st.sides[side2].g
	if !st.cmp(g1.vertexCount(), g2.vertexCount()) {
		return false
	}
	for i := 0; i < g2.vertexCount(); i++ {
		if !st.cmp(g1.totalDegree(i), g2.totalDegree(i)) {
			return false
		}
	}

	return true
}

// mapping converts the current partial mapping to loader identifiers.
func (st *State[V, E]) mapping() Mapping {
	return buildMapping(st.sides[side1].g, st.sides[side2].g, st.sides[side1].mapping)
}
