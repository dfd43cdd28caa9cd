// File: methods_edges.go
// Role: Directed edge lifecycle & queries.
//
// Layout invariants:
//   - Vertex.out is kept sorted by Edge.To, so OutEdge(id, i) is deterministic
//     and HasEdge is a binary search.
//   - Vertex.in is kept in insertion order.
//   - At most one edge per ordered pair (from, to).
package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// AddEdge inserts the directed edge from→to carrying attr.
//
// Errors:
//   - ErrVertexNotFound: either endpoint is missing.
//   - ErrLoopNotAllowed: from == to without WithLoops().
//   - ErrMultiEdgeNotAllowed: from→to already exists.
//
// Complexity: O(deg⁺(from) + 1) for the sorted insert.
func (g *Graph[V, E]) AddEdge(from, to int, attr E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fp, ok := g.index[from]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "edge %d->%d: from", from, to)
	}
	tp, ok := g.index[to]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "edge %d->%d: to", from, to)
	}
	if from == to && !g.cfg.allowLoops {
		return errors.Wrapf(ErrLoopNotAllowed, "vertex %d", from)
	}

	src, dst := g.vertices[fp], g.vertices[tp]
	at, found := slices.BinarySearchFunc(src.out, to, byTo)
	if found {
		return errors.Wrapf(ErrMultiEdgeNotAllowed, "edge %d->%d", from, to)
	}

	e := &Edge[E]{From: from, To: to, Attr: attr}
	src.out = slices.Insert(src.out, at, e)
	dst.in = append(dst.in, e)
	g.edgeCount++

	return nil
}

// Connect inserts from→to with a zero edge attribute.
func (g *Graph[V, E]) Connect(from, to int) error {
	var zero E
	return g.AddEdge(from, to, zero)
}

// Looped reports whether the graph accepts self-loops.
func (g *Graph[V, E]) Looped() bool { return g.cfg.allowLoops }

// RemoveEdge deletes the directed edge from→to.
//
// Errors:
//   - ErrVertexNotFound: either endpoint is missing.
//   - ErrEdgeNotFound: no such edge.
func (g *Graph[V, E]) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fp, ok := g.index[from]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "edge %d->%d: from", from, to)
	}
	tp, ok := g.index[to]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "edge %d->%d: to", from, to)
	}
	src, dst := g.vertices[fp], g.vertices[tp]
	if _, found := slices.BinarySearchFunc(src.out, to, byTo); !found {
		return errors.Wrapf(ErrEdgeNotFound, "edge %d->%d", from, to)
	}

	src.out = dropEdge(src.out, from, to)
	dst.in = dropEdge(dst.in, from, to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether from→to exists. Unknown endpoints yield false.
// Complexity: O(log deg⁺(from)).
func (g *Graph[V, E]) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fp, ok := g.index[from]
	if !ok {
		return false
	}
	_, found := slices.BinarySearchFunc(g.vertices[fp].out, to, byTo)

	return found
}

// EdgeAttr returns the attribute of from→to.
func (g *Graph[V, E]) EdgeAttr(from, to int) (E, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero E
	fp, ok := g.index[from]
	if !ok {
		return zero, errors.Wrapf(ErrVertexNotFound, "edge %d->%d: from", from, to)
	}
	out := g.vertices[fp].out
	at, found := slices.BinarySearchFunc(out, to, byTo)
	if !found {
		return zero, errors.Wrapf(ErrEdgeNotFound, "edge %d->%d", from, to)
	}

	return out[at].Attr, nil
}

// EdgeCount returns the number of directed edges.
func (g *Graph[V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a copy of every edge, ordered by source position and then
// by destination ID.
func (g *Graph[V, E]) Edges() []Edge[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[E], 0, g.edgeCount)
	for _, v := range g.vertices {
		for _, e := range v.out {
			out = append(out, *e)
		}
	}

	return out
}

func byTo[E any](e *Edge[E], to int) int { return e.To - to }

// dropEdge removes the (from, to) edge from list, preserving order.
func dropEdge[E any](list []*Edge[E], from, to int) []*Edge[E] {
	return slices.DeleteFunc(list, func(e *Edge[E]) bool {
		return e.From == from && e.To == to
	})
}
