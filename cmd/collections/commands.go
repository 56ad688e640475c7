package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mholzen/collections/pkg/mcp"
	"github.com/mholzen/collections/pkg/rpn"
	"github.com/mholzen/collections/pkg/stack"
	"github.com/mholzen/collections/pkg/transform"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getEvalCommand(),
		getReverseCommand(),
		getTransformsCommand(),
		getMcpCommand(),
		getVersionCommand(),
	}
}

func getEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate a postfix arithmetic expression",
		UsageText: "collections eval <expression> [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "expression",
				UsageText: "<expression> (e.g. '3 4 + 2 *')",
			},
		},
		Flags: []cli.Flag{
			getMaxDepthFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			expression := cmd.StringArg("expression")
			if expression == "" {
				return fmt.Errorf("expression is required")
			}

			result, err := rpn.Evaluate(expression, rpn.Options{MaxDepth: cmd.Int("max-depth")})
			if err != nil {
				return fmt.Errorf("cannot evaluate expression: %w", err)
			}

			fmt.Fprintf(cmd.Root().Writer, "%g\n", result)
			return nil
		},
	}
}

func getReverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "reverse",
		Usage:     "Reverse whitespace-separated tokens through a stack",
		UsageText: "collections reverse [<text>] [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "text",
				UsageText: "<text> (default: read stdin)",
			},
		},
		Flags: []cli.Flag{
			getTransformFlag(),
			getCapacityFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := cmd.StringArg("text")
			if text == "" {
				data, err := io.ReadAll(cmd.Root().Reader)
				if err != nil {
					return fmt.Errorf("cannot read stdin: %w", err)
				}
				text = string(data)
			}

			transformer := transform.Transformer(nil)
			if name := cmd.String("transform"); name != "" {
				var err error
				transformer, err = transform.Lookup(name)
				if err != nil {
					return err
				}
			}

			reversed, err := reverseTokens(text, cmd.Int("capacity"), transformer)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Root().Writer, "%s\n", strings.Join(reversed, " "))
			return nil
		},
	}
}

func reverseTokens(text string, capacity int, transformer transform.Transformer) ([]string, error) {
	tokens := strings.Fields(text)

	s := stack.New[string]()
	if capacity > 0 {
		var err error
		s, err = stack.NewBounded[string](capacity)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("reversing tokens", "count", len(tokens), "capacity", s.Cap())

	for _, token := range tokens {
		if err := s.Push(token); err != nil {
			return nil, fmt.Errorf("input exceeds %d tokens: %w", capacity, err)
		}
	}

	reversed := make([]string, 0, s.Size())
	for !s.IsEmpty() {
		token, err := s.Pop()
		if err != nil {
			return nil, err
		}
		if transformer != nil {
			transformed, err := transformer(token)
			if err != nil {
				return nil, fmt.Errorf("cannot transform %q: %w", token, err)
			}
			token = transformed
		}
		reversed = append(reversed, token)
	}
	return reversed, nil
}

func getTransformsCommand() *cli.Command {
	return &cli.Command{
		Name:      "transforms",
		Usage:     "List builtin transformers",
		UsageText: "collections transforms",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range transform.ListBuiltins() {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
			return nil
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "collections mcp [options]",
		Description: `Start the stack MCP server for integration with AI assistants.

The server communicates via stdio using the Model Context Protocol (MCP)
and holds one stack session for its lifetime.

Tool groups:
  read   Top, Size, Values, and Eval tools
  write  Push, Pop, and Clear tools
  all    All available tools (default)

Examples:
  collections mcp                    # All tools
  collections mcp --expose=read      # Read-only tools
  collections mcp --capacity=100     # Bounded session stack`,
		Flags: []cli.Flag{
			getExposeFlag(),
			getCapacityFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			serverConfig := mcp.Config{
				Capacity: cmd.Int("capacity"),
				Expose:   cmd.String("expose"),
				Version:  version,
			}
			return mcp.RunServer(ctx, serverConfig)
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "collections version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "collections version %s\n", version)
			fmt.Fprintf(cmd.Root().Writer, "commit: %s\n", commit)
			fmt.Fprintf(cmd.Root().Writer, "built: %s\n", date)
			return nil
		},
	}
}
