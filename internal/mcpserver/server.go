// Package mcpserver exposes the pattern operations as Model Context Protocol
// tools served over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"patterns/internal/adapter"
	"patterns/internal/bridge"
	"patterns/internal/builder"
	"patterns/pkg/logging"
)

const serverName = "patterns"

// Server serves pattern tools.
type Server struct {
	mcp *server.MCPServer
	now func() time.Time
}

// New creates a Server advertising version.
func New(version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, version, server.WithToolCapabilities(false)),
		now: time.Now,
	}
	handlers := s.handlers()
	for _, tool := range Tools() {
		s.mcp.AddTool(tool, handlers[tool.Name])
	}
	return s
}

// handlers maps tool names to their handlers.
func (s *Server) handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"adapter_request": s.handleAdapterRequest,
		"bridge_send":     s.handleBridgeSend,
		"builder_build":   s.handleBuilderBuild,
	}
}

// ServeStdio blocks serving requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info("mcp", "Serving pattern tools on stdio")
	return server.ServeStdio(s.mcp)
}

// Tools returns the tool definitions the server registers, in registration order.
func Tools() []mcp.Tool {
	return []mcp.Tool{adapterRequestTool(), bridgeSendTool(), builderBuildTool()}
}

func adapterRequestTool() mcp.Tool {
	return mcp.NewTool("adapter_request",
		mcp.WithDescription("Call an adaptee through its adapter and return the adapted answer"),
		mcp.WithString("time_format",
			mcp.Description("Go reference-time layout for the adaptee timestamp"),
		),
	)
}

func bridgeSendTool() mcp.Tool {
	return mcp.NewTool("bridge_send",
		mcp.WithDescription("Send content as a message kind over a transport and return what was delivered"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Message kind"),
			mcp.Enum(kindNames()...),
		),
		mcp.WithString("transport",
			mcp.Required(),
			mcp.Description("Delivery transport"),
			mcp.Enum(transportNames()...),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Message content"),
		),
	)
}

func builderBuildTool() mcp.Tool {
	return mcp.NewTool("builder_build",
		mcp.WithDescription("Build a house with a director plan or an explicit list of steps"),
		mcp.WithString("variant",
			mcp.Required(),
			mcp.Description("House builder variant"),
			mcp.Enum(variantNames()...),
		),
		mcp.WithString("plan",
			mcp.Description("Director plan; ignored when steps is set"),
			mcp.Enum(planNames()...),
		),
		mcp.WithString("steps",
			mcp.Description("Comma separated steps: basement, structure, roof, interior"),
		),
	)
}

func (s *Server) handleAdapterRequest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	layout, _ := request.GetArguments()["time_format"].(string)

	target, err := adapter.NewAdapter(adapter.NewAdaptee(adapter.WithClock(s.now), adapter.WithTimeFormat(layout)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(target.Request()), nil
}

func (s *Server) handleBridgeSend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kindArg, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}
	transportArg, err := request.RequireString("transport")
	if err != nil {
		return mcp.NewToolResultError("transport parameter is required"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content parameter is required"), nil
	}

	kind, err := bridge.ParseKind(kindArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	transport, err := bridge.ParseTransport(transportArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out bytes.Buffer
	sender, err := bridge.NewSender(transport, &out)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	msg, err := bridge.NewMessage(kind, sender)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := msg.Send(content); err != nil {
		logging.Error("mcp", err, "bridge_send failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send message: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.TrimSuffix(out.String(), "\n")), nil
}

func (s *Server) handleBuilderBuild(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	variantArg, err := request.RequireString("variant")
	if err != nil {
		return mcp.NewToolResultError("variant parameter is required"), nil
	}
	args := request.GetArguments()
	planArg, _ := args["plan"].(string)
	stepsArg, _ := args["steps"].(string)

	variant, err := builder.ParseVariant(variantArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := builder.New(variant)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if strings.TrimSpace(stepsArg) != "" {
		steps, err := builder.ParseSteps(stepsArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := builder.Apply(b, steps...); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		plan := builder.PlanFull
		if planArg != "" {
			if plan, err = builder.ParsePlan(planArg); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
		director := builder.NewDirector()
		if err := director.SetBuilder(b); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := director.Build(plan); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return mcp.NewToolResultText(b.House().String()), nil
}

func kindNames() []string {
	names := make([]string, 0, len(bridge.Kinds))
	for _, k := range bridge.Kinds {
		names = append(names, string(k))
	}
	return names
}

func transportNames() []string {
	names := make([]string, 0, len(bridge.Transports))
	for _, t := range bridge.Transports {
		names = append(names, string(t))
	}
	return names
}

func variantNames() []string {
	names := make([]string, 0, len(builder.Variants))
	for _, v := range builder.Variants {
		names = append(names, string(v))
	}
	return names
}

func planNames() []string {
	names := make([]string, 0, len(builder.Plans))
	for _, p := range builder.Plans {
		names = append(names, string(p))
	}
	return names
}
