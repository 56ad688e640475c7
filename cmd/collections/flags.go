package main

import (
	"github.com/urfave/cli/v3"
)

func getLogLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "log-level",
		Value: "warn",
		Usage: "Log level: debug, info, warn, error",
	}
}

func getLogFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "log-file",
		Usage: "Write logs to file instead of stderr",
	}
}

func getMaxDepthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "max-depth",
		Aliases: []string{"d"},
		Value:   0,
		Usage:   "Maximum operand stack depth (0 for unbounded)",
	}
}

func getCapacityFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "capacity",
		Value: 0,
		Usage: "Session stack capacity (0 for unbounded)",
	}
}

func getTransformFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "transform",
		Aliases: []string{"t"},
		Usage:   "Apply a builtin transformer to each token (see 'collections transforms')",
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: "all",
		Usage: "Tools to expose: read, write, all, or comma-separated tool names",
	}
}
