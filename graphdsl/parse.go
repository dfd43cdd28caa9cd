package graphdsl

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/vflib/core"
)

var (
	// ErrSyntax marks input the grammar does not accept.
	ErrSyntax = errors.New("graphdsl: syntax error")

	// ErrColorConflict is returned when a vertex is given two colors.
	ErrColorConflict = errors.New("graphdsl: vertex colored twice")

	// ErrBadEdge is returned for a self-loop or a repeated edge.
	ErrBadEdge = errors.New("graphdsl: invalid edge")
)

// Graph is the type Parse produces.
type Graph = core.Graph[Color, Color]

// Parse reads a graph from r. name is used in error positions.
func Parse(name string, r io.Reader) (*Graph, error) {
	expr, err := parseFile.Parse(name, r)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%s: %v", name, err)
	}

	return build(expr)
}

// ParseString reads a graph from src.
func ParseString(name, src string) (*Graph, error) {
	return Parse(name, strings.NewReader(src))
}

type graphBuilder struct {
	g       *Graph
	colored map[int]bool
}

func build(expr *fileExpr) (*Graph, error) {
	b := &graphBuilder{
		g:       core.NewGraph[Color, Color](),
		colored: make(map[int]bool),
	}
	for _, st := range expr.Statements {
		if err := b.applyStatement(st); err != nil {
			return nil, err
		}
	}

	return b.g, nil
}

func (b *graphBuilder) applyStatement(st *statementExpr) error {
	from, err := b.vertex(st.Head)
	if err != nil {
		return err
	}

	for _, step := range st.Steps {
		to, err := b.vertex(step.To)
		if err != nil {
			return err
		}
		var c Color
		if step.Color != nil {
			c = Color(*step.Color)
		}
		if err = b.g.AddEdge(from, to, c); err != nil {
			return errors.Wrapf(errors.Join(ErrBadEdge, err), "%s: %s -> %s", step.To.Pos, labelOf(b.g, from), step.To.Name)
		}
		from = to
	}

	return nil
}

// vertex resolves a mention to an identifier, creating the vertex on first
// mention and applying its color.
func (b *graphBuilder) vertex(v *vertexExpr) (int, error) {
	id, ok := b.g.VertexByLabel(v.Name)
	if !ok {
		var err error
		if id, err = b.g.AddLabeledVertex(v.Name, ""); err != nil {
			return 0, errors.Wrapf(err, "%s", v.Pos)
		}
	}
	if v.Color == nil {
		return id, nil
	}

	c := Color(*v.Color)
	if b.colored[id] {
		prev, _ := b.g.Attr(id)
		if prev != c {
			return 0, errors.Wrapf(ErrColorConflict, "%s: %s is %s, not %s", v.Pos, v.Name, prev, c)
		}
		return id, nil
	}
	b.colored[id] = true

	return id, b.g.SetAttr(id, c)
}

func labelOf(g *Graph, id int) string {
	label, _ := g.Label(id)
	return label
}
