package graphdsl

import "github.com/katalvlaran/vflib/vf"

// Color is the vertex and edge attribute of parsed graphs.
type Color string

// CompatibleWith implements vf.ContextChecker. The empty Color is a wildcard.
func (c Color) CompatibleWith(other vf.ContextChecker) bool {
	o, ok := other.(Color)
	if !ok {
		return false
	}

	return c == "" || o == "" || c == o
}
