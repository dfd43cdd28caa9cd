// File: methods_clone.go
// Role: Deep copies.
package core

import "slices"

// Clone returns a deep copy of g: same IDs, positions, labels, attributes
// and edge order. Attributes are copied by value; if V or E hold pointers the
// pointees are shared.
//
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.subgraph(nil)
}

// subgraph copies the vertices accepted by keep (all when keep is nil) and
// every edge whose endpoints are both kept. Caller holds mu for reading.
func (g *Graph[V, E]) subgraph(keep map[int]struct{}) *Graph[V, E] {
	c := &Graph[V, E]{
		cfg:      g.cfg,
		nextID:   g.nextID,
		vertices: make([]*Vertex[V, E], 0, len(g.vertices)),
		index:    make(map[int]int, len(g.vertices)),
		labels:   make(map[string]int, len(g.labels)),
	}
	kept := func(id int) bool {
		if keep == nil {
			return true
		}
		_, ok := keep[id]
		return ok
	}

	copies := make(map[*Edge[E]]*Edge[E], g.edgeCount)
	for _, v := range g.vertices {
		if !kept(v.ID) {
			continue
		}
		c.appendVertex(v.ID, v.Label, v.Attr)
	}
	// out lists first so in lists can reuse the same edge pointers.
	for _, v := range g.vertices {
		if !kept(v.ID) {
			continue
		}
		nv := c.vertices[c.index[v.ID]]
		for _, e := range v.out {
			if !kept(e.To) {
				continue
			}
			ne := &Edge[E]{From: e.From, To: e.To, Attr: e.Attr}
			copies[e] = ne
			nv.out = append(nv.out, ne)
			c.edgeCount++
		}
	}
	for _, v := range g.vertices {
		if !kept(v.ID) {
			continue
		}
		nv := c.vertices[c.index[v.ID]]
		for _, e := range v.in {
			if ne, ok := copies[e]; ok {
				nv.in = append(nv.in, ne)
			}
		}
		nv.out = slices.Clip(nv.out)
	}

	return c
}
