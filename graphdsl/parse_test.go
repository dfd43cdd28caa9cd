package graphdsl_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vflib/core"
	"github.com/katalvlaran/vflib/graphdsl"
	"github.com/katalvlaran/vflib/vf"
)

func TestParse_Chain(t *testing.T) {
	g, err := graphdsl.ParseString("tri", `
		# colored triangle
		a [red] -> b -> c [blue] -heavy-> a;
		d [red]
	`)
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	ids := make(map[string]int)
	for _, name := range []string{"a", "b", "c", "d"} {
		id, ok := g.VertexByLabel(name)
		require.True(t, ok, name)
		ids[name] = id
	}
	assert.Equal(t, []int{0, 1, 2, 3}, []int{ids["a"], ids["b"], ids["c"], ids["d"]}, "ids follow first mention")

	for name, want := range map[string]graphdsl.Color{"a": "red", "b": "", "c": "blue", "d": "red"} {
		got, err := g.Attr(ids[name])
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	heavy, err := g.EdgeAttr(ids["c"], ids["a"])
	require.NoError(t, err)
	assert.Equal(t, graphdsl.Color("heavy"), heavy)
	plain, err := g.EdgeAttr(ids["a"], ids["b"])
	require.NoError(t, err)
	assert.Equal(t, graphdsl.Color(""), plain)
}

func TestParse_StatementsWithoutSeparators(t *testing.T) {
	g, err := graphdsl.ParseString("", "x -> y y -> z\nz -> x")
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestParse_Empty(t *testing.T) {
	g, err := graphdsl.ParseString("", "  # nothing here\n")
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"dangling arrow", "a ->", graphdsl.ErrSyntax},
		{"unclosed color", "a [red", graphdsl.ErrSyntax},
		{"stray token", "a ] b", graphdsl.ErrSyntax},
		{"recolor", "a [red]; a [blue]", graphdsl.ErrColorConflict},
		{"self loop", "a -> a", graphdsl.ErrBadEdge},
		{"repeated edge", "a -> b; a -x-> b", graphdsl.ErrBadEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphdsl.Parse("t.graph", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := graphdsl.ParseString("", "a -> a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestParse_ErrorsMatchStdlib(t *testing.T) {
	_, err := graphdsl.ParseString("t.graph", "a ->")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, graphdsl.ErrSyntax))
	assert.Contains(t, err.Error(), "t.graph")

	_, err = graphdsl.ParseString("", "a -> b; a -> b")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, graphdsl.ErrBadEdge))
	assert.True(t, stderrors.Is(err, core.ErrMultiEdgeNotAllowed))
}

func TestParse_RepeatedColorAllowed(t *testing.T) {
	g, err := graphdsl.ParseString("", "a [red] -> b; b -> a [red]")
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestColor_CompatibleWith(t *testing.T) {
	red, blue, wild := graphdsl.Color("red"), graphdsl.Color("blue"), graphdsl.Color("")
	assert.True(t, red.CompatibleWith(red))
	assert.False(t, red.CompatibleWith(blue))
	assert.True(t, red.CompatibleWith(wild))
	assert.True(t, wild.CompatibleWith(blue))
}

func TestParse_ColoredMatch(t *testing.T) {
	target, err := graphdsl.ParseString("target", `
		a [red] -> b [green] -> c [green] -> a
		c -> d [red] -> a
	`)
	require.NoError(t, err)
	pattern, err := graphdsl.ParseString("pattern", "p [red] -> q -> r -> p")
	require.NoError(t, err)

	all, err := vf.MatchAll[graphdsl.Color, graphdsl.Color](target, pattern,
		vf.WithMode(vf.Subgraph), vf.WithContextCheck(true))
	require.NoError(t, err)
	require.Len(t, all, 1)

	a, _ := target.VertexByLabel("a")
	p, _ := pattern.VertexByLabel("p")
	assert.Equal(t, a, all[0].Map2To1[p])
}
