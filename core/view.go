// File: view.go
// Role: Derived graphs.
package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// InducedSubgraph returns a new graph holding the listed vertices and every
// edge of g between them. IDs, labels and attributes are preserved; positions
// follow g's order, not the order of ids. Duplicate IDs are ignored.
//
// Errors:
//   - ErrVertexNotFound: some id is not present in g.
//
// Complexity: O(V + E).
func (g *Graph[V, E]) InducedSubgraph(ids []int) (*Graph[V, E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.index[id]; !ok {
			return nil, errors.Wrapf(ErrVertexNotFound, "induced subgraph: id %d", id)
		}
		keep[id] = struct{}{}
	}

	return g.subgraph(keep), nil
}

// Reverse returns a copy of g with every edge direction flipped. Vertex
// positions are preserved.
func (g *Graph[V, E]) Reverse() *Graph[V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph[V, E]{
		cfg:      g.cfg,
		nextID:   g.nextID,
		vertices: make([]*Vertex[V, E], 0, len(g.vertices)),
		index:    make(map[int]int, len(g.vertices)),
		labels:   make(map[string]int, len(g.labels)),
	}
	for _, v := range g.vertices {
		r.appendVertex(v.ID, v.Label, v.Attr)
	}
	for _, v := range g.vertices {
		for _, e := range v.out {
			ne := &Edge[E]{From: e.To, To: e.From, Attr: e.Attr}
			src := r.vertices[r.index[ne.From]]
			at, _ := slices.BinarySearchFunc(src.out, ne.To, byTo)
			src.out = slices.Insert(src.out, at, ne)
			dst := r.vertices[r.index[ne.To]]
			dst.in = append(dst.in, ne)
			r.edgeCount++
		}
	}

	return r
}
