// ABOUTME: Root CLI command and global flags
// ABOUTME: Subcommands: serve (HTTP API), mcp (stdio server), version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookchat",
		Short: "Chat with characters from an uploaded book",
		Long: `bookchat is a backend for chatting with fictional characters.

Upload a book (PDF, text file, or webpage URL), let it detect the
characters, and talk to any of them. Replies are generated by a language
model grounded in passages retrieved from the book's text.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
