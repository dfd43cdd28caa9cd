package logger

import "github.com/urfave/cli/v2"

// LogLevelFlag selects the level passed to NewLogger.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "warning",
}
