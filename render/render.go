// Package render draws a match as a Graphviz DOT document.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/katalvlaran/vflib/core"
	"github.com/katalvlaran/vflib/vf"
)

const (
	matchedColor = "indianred"
	otherColor   = "gray"
)

// ErrForeignMapping is returned when the mapping names a vertex that the
// target graph does not have.
var ErrForeignMapping = errors.New("render: mapping does not fit the graph")

// MatchDOT writes target as DOT to w. Vertices covered by m are filled and
// labeled "target / pattern"; target edges that are images of pattern edges
// are drawn bold, the rest dashed gray.
func MatchDOT[V, E any](w io.Writer, title string, target, pattern *core.Graph[V, E], m vf.Mapping) (err error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		return errors.Wrap(err, "render: create graph")
	}
	defer func() {
		err = errors.CombineErrors(err, graph.Close())
		err = errors.CombineErrors(err, gv.Close())
	}()
	if title != "" {
		graph.SetLabel(title)
	}

	nodes := make(map[int]*cgraph.Node, target.VertexCount())
	for _, id := range target.Vertices() {
		n, err := graph.CreateNode("v" + strconv.Itoa(id))
		if err != nil {
			return errors.Wrapf(err, "render: node %d", id)
		}
		label := nameOf(target, id)
		if id2, ok := m.Map1To2[id]; ok && id2 != vf.Unset {
			label = fmt.Sprintf("%s / %s", label, nameOf(pattern, id2))
			n.SetStyle(cgraph.FilledNodeStyle)
			n.SetFillColor(matchedColor)
		}
		n.SetLabel(label)
		nodes[id] = n
	}

	images := make(map[[2]int]bool, pattern.EdgeCount())
	for _, e := range pattern.Edges() {
		from, okF := m.Map2To1[e.From]
		to, okT := m.Map2To1[e.To]
		if !okF || !okT || nodes[from] == nil || nodes[to] == nil {
			return errors.Wrapf(ErrForeignMapping, "pattern edge %d->%d", e.From, e.To)
		}
		images[[2]int{from, to}] = true
	}

	for _, e := range target.Edges() {
		edge, err := graph.CreateEdge("", nodes[e.From], nodes[e.To])
		if err != nil {
			return errors.Wrapf(err, "render: edge %d->%d", e.From, e.To)
		}
		if images[[2]int{e.From, e.To}] {
			edge.SetColor(matchedColor)
			edge.SetPenWidth(2)
		} else {
			edge.SetColor(otherColor)
			edge.SetStyle(cgraph.DashedEdgeStyle)
		}
	}

	if err = gv.Render(graph, graphviz.XDOT, w); err != nil {
		return errors.Wrap(err, "render: dot")
	}

	return nil
}

func nameOf[V, E any](g *core.Graph[V, E], id int) string {
	if label, ok := g.Label(id); ok && label != "" {
		return label
	}

	return strconv.Itoa(id)
}
