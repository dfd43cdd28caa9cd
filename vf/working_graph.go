package vf

// workingEdge is one directed edge of a workingGraph, stored once in the
// edge arena and referenced from both endpoints.
type workingEdge[E any] struct {
	from, to int
	attr     E
}

// workingVertex holds the adjacency of one vertex in working-index space.
// in/out list neighbor indices; inEdges/outEdges list the matching arena
// slots, element for element.
type workingVertex[V any] struct {
	id    int
	attr  V
	group Group

	in, out           []int
	inEdges, outEdges []int
}

// workingGraph is the degree-ordered view of one input graph used for the
// duration of a single search. Only the group tags change after construction.
type workingGraph[V, E any] struct {
	vertices []workingVertex[V]
	edges    []workingEdge[E]
	// perm[i] is the loader position of working vertex i.
	perm []int
}

// newWorkingGraph snapshots ld under perm. A nil perm selects the
// degree-descending order from degreePermutation.
//
// Every edge is read exactly once, as an out-edge of its source, and both
// adjacency directions index into the shared arena.
func newWorkingGraph[V, E any](ld GraphLoader[V, E], perm []int) *workingGraph[V, E] {
	if perm == nil {
		perm = degreePermutation(ld)
	}
	inv := reversePermutation(perm)

	wg := &workingGraph[V, E]{
		vertices: make([]workingVertex[V], len(perm)),
		perm:     perm,
	}
	for i, pos := range perm {
		id := ld.IDFromPos(pos)
		wg.vertices[i] = workingVertex[V]{
			id:    id,
			attr:  ld.VertexAttr(id),
			group: Disconnected,
		}
	}

	for i := range wg.vertices {
		id := wg.vertices[i].id
		count := ld.OutEdgeCount(id)
		for k := 0; k < count; k++ {
			toID, attr := ld.OutEdge(id, k)
			j := inv[ld.PosFromID(toID)]
			slot := len(wg.edges)
			wg.edges = append(wg.edges, workingEdge[E]{from: i, to: j, attr: attr})

			wg.vertices[i].out = append(wg.vertices[i].out, j)
			wg.vertices[i].outEdges = append(wg.vertices[i].outEdges, slot)
			wg.vertices[j].in = append(wg.vertices[j].in, i)
			wg.vertices[j].inEdges = append(wg.vertices[j].inEdges, slot)
		}
	}

	return wg
}

func (wg *workingGraph[V, E]) vertexCount() int { return len(wg.vertices) }

func (wg *workingGraph[V, E]) inDegree(i int) int  { return len(wg.vertices[i].in) }
func (wg *workingGraph[V, E]) outDegree(i int) int { return len(wg.vertices[i].out) }

func (wg *workingGraph[V, E]) totalDegree(i int) int {
	return len(wg.vertices[i].in) + len(wg.vertices[i].out)
}

func (wg *workingGraph[V, E]) inNeighbors(i int) []int  { return wg.vertices[i].in }
func (wg *workingGraph[V, E]) outNeighbors(i int) []int { return wg.vertices[i].out }

func (wg *workingGraph[V, E]) group(i int) Group       { return wg.vertices[i].group }
func (wg *workingGraph[V, E]) setGroup(i int, g Group) { wg.vertices[i].group = g }
func (wg *workingGraph[V, E]) attr(i int) V            { return wg.vertices[i].attr }
func (wg *workingGraph[V, E]) id(i int) int            { return wg.vertices[i].id }

// inEdgeAttr returns the attribute of the k-th entry of inNeighbors(i).
func (wg *workingGraph[V, E]) inEdgeAttr(i, k int) E {
	return wg.edges[wg.vertices[i].inEdges[k]].attr
}

// outEdgeAttr returns the attribute of the k-th entry of outNeighbors(i).
func (wg *workingGraph[V, E]) outEdgeAttr(i, k int) E {
	return wg.edges[wg.vertices[i].outEdges[k]].attr
}

// countGroup counts the members of list whose group intersects flags.
func (wg *workingGraph[V, E]) countGroup(list []int, flags Group) int {
	n := 0
	for _, i := range list {
		if wg.vertices[i].group.Has(flags) {
			n++
		}
	}

	return n
}
