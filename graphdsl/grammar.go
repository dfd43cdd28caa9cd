package graphdsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type fileExpr struct {
	Statements []*statementExpr `@@*`
}

type statementExpr struct {
	Pos   lexer.Position
	Head  *vertexExpr `@@`
	Steps []*stepExpr `@@* ";"?`
}

type vertexExpr struct {
	Pos   lexer.Position
	Name  string  `@Ident`
	Color *string `("[" @Ident "]")?`
}

type stepExpr struct {
	Color *string     `( "-" @Ident )? "->"`
	To    *vertexExpr `@@`
}

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_.]+`},
	{Name: "Punct", Pattern: `[-\[\];]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseFile = participle.MustBuild[fileExpr](
	participle.Lexer(graphLexer),
	participle.Elide("Comment", "Whitespace"),
)
