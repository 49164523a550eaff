// ABOUTME: Tags command lists recognized markers in priority order
package commands

import (
	"fmt"

	"github.com/harper/tag-router/internal/models"
	"github.com/spf13/cobra"
)

var tagDescriptions = map[models.Tag]string{
	models.TagIo:      "archivist persona (Gemini)",
	models.TagLumo:    "operations persona (OpenAI-compatible)",
	models.TagCopilot: "placeholder, no live backend",
}

// NewTagsCmd creates the tags command
func NewTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List recognized tag markers",
		Long:  `List recognized tag markers. Earlier markers win when a message carries several.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, tag := range models.TagPriority {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %-10s %s\n", i+1, tag.Marker(), tagDescriptions[tag])
			}
		},
	}
}
