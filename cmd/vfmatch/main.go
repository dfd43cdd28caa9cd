// Command vfmatch searches a target graph for copies of a pattern graph.
//
// Both graphs are read from graphdsl text files:
//
//	vfmatch --pattern p.graph --target t.graph --mode subgraph --all
//
// Each match is printed as a table of target and pattern vertex names.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/vflib/logger"
)

var (
	patternFlag = cli.PathFlag{
		Name:     "pattern",
		Aliases:  []string{"p"},
		Usage:    "graph file to search for",
		Required: true,
	}
	targetFlag = cli.PathFlag{
		Name:     "target",
		Aliases:  []string{"t"},
		Usage:    "graph file to search in",
		Required: true,
	}
	modeFlag = cli.StringFlag{
		Name:  "mode",
		Usage: "\"isomorphism\" or \"subgraph\"",
		Value: "isomorphism",
	}
	allFlag = cli.BoolFlag{
		Name:  "all",
		Usage: "report every match instead of the first",
	}
	limitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "stop after this many matches with --all (0 = no limit)",
	}
	contextFlag = cli.BoolFlag{
		Name:  "context",
		Usage: "require vertex and edge colors to agree",
	}
	dotFlag = cli.PathFlag{
		Name:  "dot",
		Usage: "write the first match as a DOT document to this file",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "print search metrics after the matches",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "vfmatch",
		Usage:     "find graph and subgraph isomorphisms",
		ArgsUsage: " ",
		Action:    matchAction,
		Flags: []cli.Flag{
			&patternFlag,
			&targetFlag,
			&modeFlag,
			&allFlag,
			&limitFlag,
			&contextFlag,
			&dotFlag,
			&metricsFlag,
			&logger.LogLevelFlag,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
