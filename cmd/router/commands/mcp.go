// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Lets LLM agents route tagged messages via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harper/tag-router/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the router as an MCP (Model Context Protocol) server over stdio,
so LLM agents can send tagged messages with the route_message tool.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  router mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "router": {
  #       "command": "router",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Tag Router",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, rt.dispatcher)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt.logger.Info("MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		rt.logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
