// Package graphdsl reads directed, optionally colored graphs from a small
// text format.
//
// A file is a sequence of statements. A statement names a vertex and may
// follow it with a chain of edges; an optional ";" ends it.
//
//	# a colored triangle with one heavy edge
//	a [red] -> b -> c [blue] -heavy-> a;
//	d [red];
//
// "[color]" after a vertex name colors the vertex, "-color->" colors an edge.
// Uncolored vertices and edges carry the empty Color, which matches any
// color when context checking is enabled. A vertex may be mentioned many
// times but colored only once. Self-loops and repeated edges are rejected.
//
// Parse returns a core.Graph whose vertex labels are the names in the text
// and whose identifiers follow first mention.
package graphdsl
