package vf

import "slices"

// direction selects in- or out-adjacency.
type direction uint8

const (
	dirIn direction = iota
	dirOut
)

func (wg *workingGraph[V, E]) neighbors(i int, d direction) []int {
	if d == dirIn {
		return wg.inNeighbors(i)
	}
	return wg.outNeighbors(i)
}

func (wg *workingGraph[V, E]) edgeAttr(i int, d direction, k int) E {
	if d == dirIn {
		return wg.inEdgeAttr(i, k)
	}
	return wg.outEdgeAttr(i, k)
}

// feasible reports whether pairing u (G1) with v (G2) keeps the partial
// mapping consistent. Checks run cheapest first:
//  1. attribute compatibility, when context checking is on;
//  2. agreement on self-loops;
//  3. local isomorphism of the in- and out-neighborhoods;
//  4. the six classification counts of the neighborhoods.
func (st *State[V, E]) feasible(u, v int) bool {
	g1, g2 := st.sides[side1].g, st.sides[side2].g

	if st.opts.ContextCheck && !compatible(g1.attr(u), g2.attr(v)) {
		return false
	}
	if !st.loopsAgree(u, v) {
		return false
	}
	if !st.locallyIsomorphic(u, v, dirIn) || !st.locallyIsomorphic(u, v, dirOut) {
		return false
	}

	return st.inOutNew(u, v)
}

// locallyIsomorphic checks that every mapped d-neighbor of u maps to a
// d-neighbor of v, and that v has no further mapped d-neighbors.
// loopsAgree reports whether u and v both carry a self-loop or both lack
// one. Neither is mapped yet, so locallyIsomorphic cannot see the loop.
func (st *State[V, E]) loopsAgree(u, v int) bool {
	g1, g2 := st.sides[side1].g, st.sides[side2].g
	k1 := slices.Index(g1.outNeighbors(u), u)
	k2 := slices.Index(g2.outNeighbors(v), v)
	if (k1 < 0) != (k2 < 0) {
		return false
	}
	if k1 < 0 || !st.opts.ContextCheck {
		return true
	}

	return compatible(g1.outEdgeAttr(u, k1), g2.outEdgeAttr(v, k2))
}

func (st *State[V, E]) locallyIsomorphic(u, v int, d direction) bool {
	g1, g2 := st.sides[side1].g, st.sides[side2].g
	n1, n2 := g1.neighbors(u, d), g2.neighbors(v, d)
	map1to2 := st.sides[side1].mapping

	mapped := 0
	for k, w := range n1 {
		target := map1to2[w]
		if target == Unset {
			continue
		}
		mapped++
		at := slices.Index(n2, target)
		if at < 0 {
			return false
		}
		if st.opts.ContextCheck && !compatible(g1.edgeAttr(u, d, k), g2.edgeAttr(v, d, at)) {
			return false
		}
	}

	return mapped == g2.countGroup(n2, ContainedInMapping)
}

// inOutNew compares, per direction, how many neighbors of u and v fall in
// each of FromMapping, ToMapping and Disconnected.
func (st *State[V, E]) inOutNew(u, v int) bool {
	g1, g2 := st.sides[side1].g, st.sides[side2].g
	for _, d := range [...]direction{dirOut, dirIn} {
		n1, n2 := g1.neighbors(u, d), g2.neighbors(v, d)
		for _, grp := range [...]Group{FromMapping, ToMapping, Disconnected} {
			if !st.cmp(g1.countGroup(n1, grp), g2.countGroup(n2, grp)) {
				return false
			}
		}
	}

	return true
}

// addMatchToSolution commits (u, v) through log and reclassifies their
// neighbors: out-neighbors gain FromMapping, in-neighbors gain ToMapping.
// It returns false when the resulting totals or the neighborhood sizes of u
// and v fail the degree comparison; the caller must then undo log.
func (st *State[V, E]) addMatchToSolution(u, v int, log *actionLog) bool {
	log.setMatch(st, u, v)

	for _, side := range [...]int{side1, side2} {
		g := st.sides[side].g
		i := u
		if side == side2 {
			i = v
		}
		for _, w := range g.outNeighbors(i) {
			if g.group(w).Has(Disconnected | ToMapping) {
				log.moveToGroup(st, side, w, FromMapping)
			}
		}
		for _, w := range g.inNeighbors(i) {
			if g.group(w).Has(Disconnected | FromMapping) {
				log.moveToGroup(st, side, w, ToMapping)
			}
		}
	}

	s1, s2 := &st.sides[side1], &st.sides[side2]
	if !st.cmp(s1.outTotal, s2.outTotal) || !st.cmp(s1.inTotal, s2.inTotal) {
		return false
	}

	return st.cmp(s1.g.outDegree(u), s2.g.outDegree(v)) && st.cmp(s1.g.inDegree(u), s2.g.inDegree(v))
}
