package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/collections/pkg/stack"
)

// Config controls MCP server startup.
type Config struct {
	// Capacity bounds the session stack. Zero or negative means unbounded.
	Capacity int
	Expose   string
	Version  string
}

// RunServer starts the MCP stdio server with the requested tool set.
// It serves a single in-process stack session for the lifetime of the
// server; stdio transport handles one client at a time, so the session
// needs no locking.
func RunServer(ctx context.Context, cfg Config) error {
	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = "read"
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return err
	}

	session, err := newSession(cfg.Capacity)
	if err != nil {
		return err
	}

	builder := NewToolBuilder(session)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"collections",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

func newSession(capacity int) (*stack.Stack[string], error) {
	if capacity > 0 {
		return stack.NewBounded[string](capacity)
	}
	return stack.New[string](), nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// Supports groups: all, read, write. Individual tools can be referenced either by
// their short name (e.g., "push") or full MCP name (e.g., "stack_push").
func ParseExposeList(raw string) ([]string, error) {
	tokenList := strings.Split(raw, ",")

	var tokens []string
	for _, t := range tokenList {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"read"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if group, ok := groupMap[token]; ok {
			addSet(group)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		// Accept the fully qualified tool name if provided.
		if _, ok := aliasMapFull[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool or group in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolTop,
		ToolSize,
		ToolValues,
		ToolEval,
		ToolPush,
		ToolPop,
		ToolClear,
	}

	readTools = []string{
		ToolTop,
		ToolSize,
		ToolValues,
		ToolEval,
	}

	writeTools = []string{
		ToolPush,
		ToolPop,
		ToolClear,
	}

	groupMap = map[string][]string{
		"all":   allTools,
		"read":  readTools,
		"write": writeTools,
	}

	aliasMap = map[string]string{
		"top":    ToolTop,
		"size":   ToolSize,
		"values": ToolValues,
		"eval":   ToolEval,
		"push":   ToolPush,
		"pop":    ToolPop,
		"clear":  ToolClear,
	}

	aliasMapFull = func() map[string]string {
		out := make(map[string]string, len(aliasMap))
		for _, fullName := range allTools {
			out[fullName] = fullName
		}
		return out
	}()
)
