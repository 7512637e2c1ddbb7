package cmd

import (
	"github.com/spf13/cobra"

	"patterns/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the pattern operations as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  adapter_request  - call the adaptee through its adapter
  bridge_send      - send content as a user message or system alert over email or SMS
  builder_build    - build an igloo or stone house with a plan or explicit steps

Logs are written to stderr so they never interleave with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.New(cmd.Root().Version).ServeStdio()
		},
	}
}
