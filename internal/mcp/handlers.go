// ABOUTME: MCP tool handler implementations for the bookchat server
// ABOUTME: Thin adapters from tool arguments to the chat engine
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"bookchat/internal/core"
	"bookchat/internal/extract"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine    *core.Engine
	extractor *extract.Extractor
}

// UploadBook handles the upload_book tool
func (h *Handlers) UploadBook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url argument is required and must be a string"), nil
	}

	text, err := h.extractor.ExtractURL(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	result, err := h.engine.Upload(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("upload failed: %v", err)), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// ChatWithCharacter handles the chat_with_character tool
func (h *Handlers) ChatWithCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	character, err := request.RequireString("character")
	if err != nil {
		return mcp.NewToolResultError("character argument is required and must be a string"), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	reply, err := h.engine.Chat(ctx, character, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chat failed: %v", err)), nil
	}
	return mcp.NewToolResultText(reply), nil
}

// ListCharacters handles the list_characters tool
func (h *Handlers) ListCharacters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	characters := h.engine.Characters()
	if len(characters) == 0 {
		return mcp.NewToolResultText("No document uploaded yet."), nil
	}
	return mcp.NewToolResultText(strings.Join(characters, "\n")), nil
}
