// Package: builder
//
// helpers.go - label-addressed vertex and edge insertion shared by constructors.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ensureVertex returns the vertex labeled label, adding it when missing.
func ensureVertex(g Sink, label string) (int, error) {
	if id, ok := g.VertexByLabel(label); ok {
		return id, nil
	}

	return g.AddBlankVertex(label)
}

// addVerticesWithIDFn ensures labels idFn(0..n-1) and returns their IDs in order.
func addVerticesWithIDFn(method string, g Sink, n int, idFn IDFn) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		label := idFn(i)
		id, err := ensureVertex(g, label)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: AddVertex(%s)", method, label)
		}
		ids[i] = id
	}

	return ids, nil
}

// link emits u→v, plus v→u when cfg.bidirectional. Existing edges are kept
// as they are and self-loops are skipped on graphs that reject them.
func link(method string, g Sink, cfg builderConfig, u, v int) error {
	if u == v && !g.Looped() {
		return nil
	}
	if !g.HasEdge(u, v) {
		if err := g.Connect(u, v); err != nil {
			return errors.Wrapf(err, "%s: AddEdge(%d→%d)", method, u, v)
		}
	}
	if cfg.bidirectional && u != v && !g.HasEdge(v, u) {
		if err := g.Connect(v, u); err != nil {
			return errors.Wrapf(err, "%s: AddEdge(%d→%d)", method, v, u)
		}
	}

	return nil
}

// vertexID joins a prefix and an index ("L" + 3 → "L3").
func vertexID(prefix string, i int) string {
	return SymbolNumberIDFn(prefix)(i)
}
