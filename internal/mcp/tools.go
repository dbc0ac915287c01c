// ABOUTME: MCP tool definitions and registration for the bookchat server
// ABOUTME: Exposes upload_book, chat_with_character, and list_characters over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"bookchat/internal/core"
	"bookchat/internal/extract"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *core.Engine, extractor *extract.Extractor) *Handlers {
	handlers := &Handlers{
		engine:    engine,
		extractor: extractor,
	}

	// 1. upload_book - Fetch a book or webpage and rebuild the session
	server.AddTool(mcp.Tool{
		Name:        "upload_book",
		Description: "Fetch a book or webpage by URL, detect its characters, and make it the active document for character chat. Replaces any previously uploaded document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "URL of the book or webpage to upload",
				},
			},
			Required: []string{"url"},
		},
	}, handlers.UploadBook)

	// 2. chat_with_character - Chat with a detected character
	server.AddTool(mcp.Tool{
		Name:        "chat_with_character",
		Description: "Send a message to one of the detected characters and receive an in-character reply grounded in the uploaded book.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"character": map[string]interface{}{
					"type":        "string",
					"description": "Name of the character to chat with",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Message to send to the character",
				},
			},
			Required: []string{"character", "message"},
		},
	}, handlers.ChatWithCharacter)

	// 3. list_characters - List the active document's characters
	server.AddTool(mcp.Tool{
		Name:        "list_characters",
		Description: "List the characters detected in the currently uploaded document.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListCharacters)

	return handlers
}
