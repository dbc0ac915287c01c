// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Enables LLM agents to upload books and chat with characters via stdio
package commands

import (
	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"bookchat/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs bookchat as an MCP (Model Context Protocol) server over stdio,
exposing upload_book, chat_with_character, and list_characters tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  bookchat mcp`,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine, extractor, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	srv := mcpserver.NewMCPServer("Bookchat Character Chat", versionInfo.Version)
	mcp.RegisterTools(srv, engine, extractor)

	logger.Info("bookchat MCP server starting on stdio")
	return mcpserver.ServeStdio(srv)
}
