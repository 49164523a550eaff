// ABOUTME: Tag detector that picks a backend from markers in the message text
// ABOUTME: Case-insensitive substring match over models.TagPriority, first match wins
package core

import (
	"strings"

	"github.com/harper/tag-router/internal/models"
)

// Detect returns Routed(tag) for the first marker in priority order that
// appears anywhere in message, ignoring case, or Unrouted when none does.
// Markers include their brackets: "[io]" routes to Io, a bare "Io" does not.
func Detect(message string) models.RoutingOutcome {
	lower := strings.ToLower(message)
	for _, tag := range models.TagPriority {
		if strings.Contains(lower, strings.ToLower(tag.Marker())) {
			return models.Routed(tag)
		}
	}
	return models.Unrouted()
}
