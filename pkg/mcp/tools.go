package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/collections/pkg/rpn"
	"github.com/mholzen/collections/pkg/stack"
)

const (
	ToolPush   = "stack_push"
	ToolPop    = "stack_pop"
	ToolTop    = "stack_top"
	ToolSize   = "stack_size"
	ToolValues = "stack_values"
	ToolClear  = "stack_clear"
	ToolEval   = "stack_eval"
)

// ToolBuilder wires stack operations into MCP tool handlers. All tools
// share one session stack.
type ToolBuilder struct {
	session *stack.Stack[string]
}

// NewToolBuilder creates a builder bound to the provided session stack.
func NewToolBuilder(session *stack.Stack[string]) ToolBuilder {
	return ToolBuilder{session: session}
}

func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolPush:   b.buildPushTool,
		ToolPop:    b.buildPopTool,
		ToolTop:    b.buildTopTool,
		ToolSize:   b.buildSizeTool,
		ToolValues: b.buildValuesTool,
		ToolClear:  b.buildClearTool,
		ToolEval:   b.buildEvalTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

func (b ToolBuilder) capacityNote() string {
	if b.session.Cap() == stack.Unbounded {
		return ""
	}
	return fmt.Sprintf(" (session stack capacity: %d)", b.session.Cap())
}

func (b ToolBuilder) buildPushTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolPush,
			mcptypes.WithDescription("Push a value onto the session stack"+b.capacityNote()),
			mcptypes.WithString("value",
				mcptypes.Description("Value to push"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			value := req.GetString("value", "")

			if err := b.session.Push(value); err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot push", err), nil
			}

			slog.Debug("pushed value", "size", b.session.Size())
			return mcptypes.NewToolResultJSON(map[string]any{"size": b.session.Size()})
		},
	}
}

func (b ToolBuilder) buildPopTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolPop,
			mcptypes.WithDescription("Remove and return the top of the session stack"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			value, err := b.session.Pop()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot pop", err), nil
			}

			return mcptypes.NewToolResultJSON(map[string]any{
				"value": value,
				"size":  b.session.Size(),
			})
		},
	}
}

func (b ToolBuilder) buildTopTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolTop,
			mcptypes.WithDescription("Return the top of the session stack without removing it"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			value, err := b.session.Top()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot read top", err), nil
			}

			return mcptypes.NewToolResultJSON(map[string]any{
				"value": value,
				"size":  b.session.Size(),
			})
		},
	}
}

func (b ToolBuilder) buildSizeTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolSize,
			mcptypes.WithDescription("Report size, capacity, and emptiness of the session stack"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultJSON(map[string]any{
				"size":     b.session.Size(),
				"capacity": b.session.Cap(),
				"empty":    b.session.IsEmpty(),
			})
		},
	}
}

func (b ToolBuilder) buildValuesTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolValues,
			mcptypes.WithDescription("List session stack values, ordered bottom to top"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultJSON(map[string]any{"values": b.session.Values()})
		},
	}
}

func (b ToolBuilder) buildClearTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolClear,
			mcptypes.WithDescription("Remove all values from the session stack"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			b.session.Clear()
			return mcptypes.NewToolResultJSON(map[string]any{"size": 0})
		},
	}
}

func (b ToolBuilder) buildEvalTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolEval,
			mcptypes.WithDescription("Evaluate a postfix arithmetic expression, e.g. '3 4 + 2 *'"),
			mcptypes.WithString("expression",
				mcptypes.Description("Whitespace-separated postfix expression"),
				mcptypes.Required(),
			),
			mcptypes.WithNumber("max_depth",
				mcptypes.Description("Operand stack bound (0 for unbounded)"),
				mcptypes.DefaultNumber(0),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			expression := req.GetString("expression", "")
			maxDepth := req.GetInt("max_depth", 0)

			result, err := rpn.Evaluate(expression, rpn.Options{MaxDepth: maxDepth})
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot evaluate expression", err), nil
			}

			return mcptypes.NewToolResultJSON(map[string]any{"result": result})
		},
	}
}
