// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in position (insertion) order.
//   - IDs are never reused, even after RemoveVertex.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import (
	"github.com/cockroachdb/errors"
)

// AddVertex appends a vertex carrying attr and returns its new ID.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on mu.
func (g *Graph[V, E]) AddVertex(attr V) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.appendVertex(g.nextID, "", attr)
}

// AddVertices appends n vertices that share attr and returns the ID of the
// first one; the others follow consecutively. n <= 0 adds nothing and returns
// the ID the next vertex would receive.
//
// Complexity: O(n).
func (g *Graph[V, E]) AddVertices(n int, attr V) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := g.nextID
	for i := 0; i < n; i++ {
		g.appendVertex(g.nextID, "", attr)
	}

	return first
}

// AddLabeledVertex appends a vertex with a unique label.
//
// Errors:
//   - ErrEmptyLabel: label == "".
//   - ErrDuplicateVertex: label already in use.
func (g *Graph[V, E]) AddLabeledVertex(label string, attr V) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, taken := g.labels[label]; taken {
		return 0, errors.Wrapf(ErrDuplicateVertex, "label %q", label)
	}

	return g.appendVertex(g.nextID, label, attr), nil
}

// AddBlankVertex appends a vertex with a zero attribute. An empty label is
// allowed and leaves the vertex unlabeled.
func (g *Graph[V, E]) AddBlankVertex(label string) (int, error) {
	var zero V
	if label == "" {
		return g.AddVertex(zero), nil
	}

	return g.AddLabeledVertex(label, zero)
}

// appendVertex registers a vertex at the end of the position order.
// Caller must hold mu for writing and have validated id/label uniqueness.
func (g *Graph[V, E]) appendVertex(id int, label string, attr V) int {
	v := &Vertex[V, E]{ID: id, Label: label, Attr: attr}
	g.index[id] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	if label != "" {
		g.labels[label] = id
	}
	if id >= g.nextID {
		g.nextID = id + 1
	}

	return id
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// RemoveVertex deletes a vertex and every incident edge. Positions of the
// vertices that followed it shift down by one; their IDs do not change.
//
// Errors:
//   - ErrVertexNotFound: id is not present.
//
// Complexity: O(V + deg(id)·d) where d is the neighbor degree.
func (g *Graph[V, E]) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[id]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	v := g.vertices[pos]

	// Detach incident edges from the opposite endpoints first.
	for _, e := range v.out {
		if e.To != id {
			w := g.vertices[g.index[e.To]]
			w.in = dropEdge(w.in, id, e.To)
		}
		g.edgeCount--
	}
	for _, e := range v.in {
		if e.From != id {
			w := g.vertices[g.index[e.From]]
			w.out = dropEdge(w.out, e.From, id)
			g.edgeCount--
		}
	}

	if v.Label != "" {
		delete(g.labels, v.Label)
	}
	delete(g.index, id)
	g.vertices = append(g.vertices[:pos], g.vertices[pos+1:]...)
	for p := pos; p < len(g.vertices); p++ {
		g.index[g.vertices[p].ID] = p
	}

	return nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns all vertex IDs in position order.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.ID
	}

	return out
}

// Attr returns the attribute stored on vertex id.
func (g *Graph[V, E]) Attr(id int) (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		var zero V
		return zero, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}

	return g.vertices[pos].Attr, nil
}

// SetAttr replaces the attribute stored on vertex id.
func (g *Graph[V, E]) SetAttr(id int, attr V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[id]
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	g.vertices[pos].Attr = attr

	return nil
}

// Label returns the label of vertex id; ok is false for unknown IDs.
// Unlabeled vertices report "" with ok == true.
func (g *Graph[V, E]) Label(id int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return "", false
	}

	return g.vertices[pos].Label, true
}

// VertexByLabel resolves a label to its vertex ID.
func (g *Graph[V, E]) VertexByLabel(label string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.labels[label]

	return id, ok
}

// Degree returns the in- and out-degree of vertex id. A self-loop counts once
// in each direction.
func (g *Graph[V, E]) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return 0, 0, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}
	v := g.vertices[pos]

	return len(v.in), len(v.out), nil
}
