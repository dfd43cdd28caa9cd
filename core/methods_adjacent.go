// File: methods_adjacent.go
// Role: Neighborhood queries.
package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Successors returns the destination IDs of id's outgoing edges, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: id is not present.
func (g *Graph[V, E]) Successors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	out := g.vertices[pos].out
	ids := make([]int, len(out))
	for i, e := range out {
		ids[i] = e.To
	}

	return ids, nil
}

// Predecessors returns the source IDs of id's incoming edges in insertion order.
func (g *Graph[V, E]) Predecessors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	in := g.vertices[pos].in
	ids := make([]int, len(in))
	for i, e := range in {
		ids[i] = e.From
	}

	return ids, nil
}

// Neighbors returns the union of successors and predecessors of id, each
// listed once, in ascending ID order. Self-loops report id itself.
func (g *Graph[V, E]) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	v := g.vertices[pos]
	seen := make(map[int]struct{}, len(v.out)+len(v.in))
	for _, e := range v.out {
		seen[e.To] = struct{}{}
	}
	for _, e := range v.in {
		seen[e.From] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for n := range seen {
		ids = append(ids, n)
	}
	slices.Sort(ids)

	return ids, nil
}
