package vf

// candidateGenerator proposes G1 partners for one G2 vertex.
//
// The G2 vertex is the first (highest-degree) member of the first
// classification that is non-empty on both sides, tried in the order
// FromMapping, ToMapping, Disconnected. Its G1 partners are a snapshot of
// the same classification on G1, in index order and therefore in
// descending degree. Enumeration ends at the first partner whose degree
// fails the comparison with the G2 vertex: every later partner has a lower
// degree.
type candidateGenerator[V, E any] struct {
	st *State[V, E]

	candidates []int
	next       int
	v          int
	degree2    int
	failed     bool
}

func newCandidateGenerator[V, E any](st *State[V, E]) *candidateGenerator[V, E] {
	c := &candidateGenerator[V, E]{st: st}
	s1, s2 := &st.sides[side1], &st.sides[side2]

	if !st.cmp(s1.out.size(), s2.out.size()) ||
		!st.cmp(s1.in.size(), s2.in.size()) ||
		!st.cmp(s1.disc.size(), s2.disc.size()) {
		c.failed = true
		return c
	}

	var set1, set2 *indexSet
	switch {
	case s1.out.size() > 0 && s2.out.size() > 0:
		set1, set2 = s1.out, s2.out
	case s1.in.size() > 0 && s2.in.size() > 0:
		set1, set2 = s1.in, s2.in
	default:
		set1, set2 = s1.disc, s2.disc
	}

	v, ok := set2.first()
	if !ok || set1.size() == 0 {
		c.failed = true
		return c
	}
	c.v = v
	c.degree2 = s2.g.totalDegree(v)
	c.candidates = set1.snapshot()
	if !c.validDegree(c.candidates[0]) {
		c.failed = true
	}

	return c
}

func (c *candidateGenerator[V, E]) validDegree(u int) bool {
	return c.st.cmp(c.st.sides[side1].g.totalDegree(u), c.degree2)
}

// nextPair returns the next (G1, G2) pair, or ok == false once exhausted.
func (c *candidateGenerator[V, E]) nextPair() (u, v int, ok bool) {
	if c.failed || c.next >= len(c.candidates) {
		return 0, 0, false
	}
	u = c.candidates[c.next]
	c.next++
	if !c.validDegree(u) {
		c.failed = true
		return 0, 0, false
	}

	return u, c.v, true
}
