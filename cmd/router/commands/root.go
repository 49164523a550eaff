// ABOUTME: Root command and global flags for the tag router CLI
// ABOUTME: Wires serve, mcp, route, tags, and version subcommands
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "router",
		Short: "Route tagged messages to AI backends",
		Long: `Tag Router

Reads a short message, looks for one tag marker, and forwards the message
to the matching AI backend:

  [Io]       archivist persona (Gemini)
  [Lumo]     operations persona (OpenAI-compatible)
  [Copilot]  placeholder, not wired to a live service

When a message carries several markers the first in the list above wins.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	cmd.AddCommand(
		NewServeCmd(),
		NewMCPCmd(),
		NewRouteCmd(),
		NewTagsCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
