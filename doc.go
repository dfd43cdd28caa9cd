// Package vflib finds graph isomorphisms and subgraph isomorphisms between
// directed graphs with the VF algorithm.
//
// 🚀 What is vflib?
//
//	A generic, read-only matcher plus the pieces around it:
//		• vf: the search itself, lazy enumeration of every match
//		• core: a thread-safe directed graph that vf reads directly
//		• builder: deterministic generators (cycles, grids, wheels, random)
//		• gonumgraph: search graphs held in gonum's graph types
//		• graphdsl: a small text format for colored graphs
//		• render: DOT output highlighting a match
//		• metrics: Prometheus counters fed by finished searches
//
// Quick ASCII example:
//
//	    A──▶B          x──▶y
//	    ▲   │
//	    └─C◀┘
//
//	x→y embeds into the directed triangle three ways in Subgraph mode.
//
// Command vfmatch wraps the whole chain for graph files:
//
//	go run github.com/katalvlaran/vflib/cmd/vfmatch --pattern p.graph --target t.graph --mode subgraph --all
package vflib
