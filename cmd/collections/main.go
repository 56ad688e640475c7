package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := &cli.Command{
		Name:      "collections",
		Usage:     "Bounded generic stack demos",
		UsageText: "collections <command> [options]",
		Flags: []cli.Flag{
			getLogLevelFlag(),
			getLogFileFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(cmd.String("log-level"), cmd.String("log-file")); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: getCommands(),
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
