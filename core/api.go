// File: api.go
// Role: Position-indexed read surface consumed by matching engines.
// Policy:
//   - Positions are 0..VertexCount()-1 in insertion order; IDs are stable.
//   - Every method here takes the read lock and performs no allocation.
//   - Unknown IDs or out-of-range positions panic with ErrVertexNotFound;
//     callers obtain IDs through IDFromPos so a miss is a programming error.

package core

import (
	"github.com/cockroachdb/errors"
)

// IDFromPos maps a position in [0, VertexCount()) to the vertex ID stored there.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Bounds-check pos and return vertices[pos].ID.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Panics:
//   - ErrVertexNotFound (wrapped) if pos is out of range.
func (g *Graph[V, E]) IDFromPos(pos int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if pos < 0 || pos >= len(g.vertices) {
		panic(errors.Wrapf(ErrVertexNotFound, "position %d of %d", pos, len(g.vertices)))
	}

	return g.vertices[pos].ID
}

// PosFromID is the inverse of IDFromPos.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Panics:
//   - ErrVertexNotFound (wrapped) if id is unknown.
func (g *Graph[V, E]) PosFromID(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mustPos(id)
}

// VertexAttr returns the attribute of vertex id.
// Panics on unknown id; use Attr for an error-returning lookup.
func (g *Graph[V, E]) VertexAttr(id int) V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[g.mustPos(id)].Attr
}

// OutEdgeCount returns the out-degree of vertex id.
func (g *Graph[V, E]) OutEdgeCount(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices[g.mustPos(id)].out)
}

// InEdgeCount returns the in-degree of vertex id.
func (g *Graph[V, E]) InEdgeCount(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices[g.mustPos(id)].in)
}

// OutEdge returns the i-th outgoing edge of vertex id as (destination ID, attribute).
// Outgoing edges are ordered by destination ID.
//
// Panics:
//   - ErrVertexNotFound (wrapped) if id is unknown.
//   - ErrEdgeNotFound (wrapped) if i is out of range.
func (g *Graph[V, E]) OutEdge(id, i int) (int, E) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.vertices[g.mustPos(id)].out
	if i < 0 || i >= len(out) {
		panic(errors.Wrapf(ErrEdgeNotFound, "out-edge %d of vertex %d (degree %d)", i, id, len(out)))
	}

	return out[i].To, out[i].Attr
}

// InEdge returns the i-th incoming edge of vertex id as (source ID, attribute).
// Incoming edges are ordered by insertion.
func (g *Graph[V, E]) InEdge(id, i int) (int, E) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	in := g.vertices[g.mustPos(id)].in
	if i < 0 || i >= len(in) {
		panic(errors.Wrapf(ErrEdgeNotFound, "in-edge %d of vertex %d (degree %d)", i, id, len(in)))
	}

	return in[i].From, in[i].Attr
}

// mustPos resolves id under an already-held lock.
func (g *Graph[V, E]) mustPos(id int) int {
	pos, ok := g.index[id]
	if !ok {
		panic(errors.Wrapf(ErrVertexNotFound, "id %d", id))
	}

	return pos
}
