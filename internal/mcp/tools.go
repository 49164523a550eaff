// ABOUTME: MCP tool definitions and registration for the tag router
// ABOUTME: Exposes route_message and list_tags to LLM agents over stdio
package mcp

import (
	"github.com/harper/tag-router/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, dispatcher *core.Dispatcher) *Handlers {
	handlers := &Handlers{dispatcher: dispatcher}

	// 1. route_message - Detect the tag in a message and return the backend's reply
	server.AddTool(mcp.Tool{
		Name:        "route_message",
		Description: "Route a message to the AI backend named by its tag ([Io], [Lumo], or [Copilot]) and return the reply text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Message text containing one tag marker, e.g. \"[Io] what happened to issue 12?\"",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.RouteMessage)

	// 2. list_tags - List recognized tag markers in priority order
	server.AddTool(mcp.Tool{
		Name:        "list_tags",
		Description: "List the recognized tag markers in priority order. When a message carries several, the first listed wins.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListTags)

	return handlers
}
