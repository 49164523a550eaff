// ABOUTME: MCP tool handler implementations for the tag router
// ABOUTME: Backend failures come back as error results, never as protocol errors
package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	dispatcher *core.Dispatcher
}

// RouteMessage handles the route_message tool
func (h *Handlers) RouteMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	res, err := h.dispatcher.RouteAndDispatch(ctx, message)
	if errors.Is(err, models.ErrEmptyMessage) {
		return mcp.NewToolResultError("message must not be empty"), nil
	}
	if res.Failed() {
		return mcp.NewToolResultError(res.Reply), nil
	}
	return mcp.NewToolResultText(res.Reply), nil
}

// ListTags handles the list_tags tool
func (h *Handlers) ListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(models.RecognizedMarkers(), "\n")), nil
}
