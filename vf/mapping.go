package vf

import "slices"

// Unset marks a G1 vertex that is not part of a subgraph match.
const Unset = -1

// Mapping is one match expressed in loader identifiers.
//
// Map1To2 has an entry for every G1 vertex: its G2 counterpart, or Unset.
// Map2To1 has an entry for every G2 vertex.
//
// Loaders whose identifiers can be negative should consult Map2To1, or
// Pairs, since Unset is then ambiguous in Map1To2.
type Mapping struct {
	Map1To2 map[int]int
	Map2To1 map[int]int
}

// Pair is one matched (G1, G2) vertex pair.
type Pair struct {
	G1, G2 int
}

// Len returns the number of matched pairs.
func (m Mapping) Len() int { return len(m.Map2To1) }

// Pairs lists the matched pairs ordered by G2 identifier.
func (m Mapping) Pairs() []Pair {
	out := make([]Pair, 0, len(m.Map2To1))
	for id2, id1 := range m.Map2To1 {
		out = append(out, Pair{G1: id1, G2: id2})
	}
	slices.SortFunc(out, func(a, b Pair) int { return a.G2 - b.G2 })

	return out
}

// buildMapping translates working-index tables into loader identifiers.
func buildMapping[V, E any](wg1, wg2 *workingGraph[V, E], map1to2 []int) Mapping {
	m := Mapping{
		Map1To2: make(map[int]int, len(map1to2)),
		Map2To1: make(map[int]int, wg2.vertexCount()),
	}
	for i, j := range map1to2 {
		id1 := wg1.id(i)
		if j == Unset {
			m.Map1To2[id1] = Unset
			continue
		}
		id2 := wg2.id(j)
		m.Map1To2[id1] = id2
		m.Map2To1[id2] = id1
	}

	return m
}
