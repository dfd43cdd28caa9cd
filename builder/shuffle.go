// Package: builder
//
// shuffle.go - isomorphic relabeling of an existing graph.

package builder

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/vflib/core"
)

// Shuffled returns a graph isomorphic to g whose vertices are inserted in a
// random order and whose edges are inserted in a random order, together
// with perm mapping each vertex ID of g to its ID in the copy. Labels,
// vertex attributes and edge attributes travel with their vertices and
// edges. The loop policy of g is preserved.
//
// Errors:
//   - ErrNeedRandSource: rng is nil.
//
// Complexity: O(V + E).
func Shuffled[V, E any](g *core.Graph[V, E], rng *rand.Rand) (*core.Graph[V, E], map[int]int, error) {
	if rng == nil {
		return nil, nil, errors.Wrapf(ErrNeedRandSource, "%s", MethodShuffled)
	}

	var gopts []core.GraphOption
	if g.Looped() {
		gopts = append(gopts, core.WithLoops())
	}
	out := core.NewGraph[V, E](gopts...)

	ids := g.Vertices()
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	perm := make(map[int]int, len(ids))
	for _, id := range ids {
		attr, err := g.Attr(id)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s", MethodShuffled)
		}
		label, _ := g.Label(id)
		var nid int
		if label == "" {
			nid = out.AddVertex(attr)
		} else if nid, err = out.AddLabeledVertex(label, attr); err != nil {
			return nil, nil, errors.Wrapf(err, "%s", MethodShuffled)
		}
		perm[id] = nid
	}

	edges := g.Edges()
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	for _, e := range edges {
		if err := out.AddEdge(perm[e.From], perm[e.To], e.Attr); err != nil {
			return nil, nil, errors.Wrapf(err, "%s", MethodShuffled)
		}
	}

	return out, perm, nil
}
