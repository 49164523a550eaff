// ABOUTME: Tag and routing outcome types for the tag detector
// ABOUTME: Defines the closed tag set, marker syntax, and priority order
package models

import (
	"fmt"
	"strings"
)

// Tag identifies the backend a message is routed to
type Tag string

const (
	// TagIo - Archivist persona backed by Gemini
	TagIo Tag = "Io"

	// TagLumo - Operations persona backed by an OpenAI-compatible endpoint
	TagLumo Tag = "Lumo"

	// TagCopilot - Stub backend, not wired to a live service yet
	TagCopilot Tag = "Copilot"
)

// TagPriority is the order markers are tested in. When a message carries
// more than one marker, the earliest tag in this list wins.
var TagPriority = []Tag{TagIo, TagLumo, TagCopilot}

// IsValid reports whether t is one of the recognized tags
func (t Tag) IsValid() bool {
	for _, known := range TagPriority {
		if t == known {
			return true
		}
	}
	return false
}

// Marker returns the bracketed literal that selects this tag, e.g. "[Io]"
func (t Tag) Marker() string {
	return "[" + string(t) + "]"
}

func (t Tag) String() string {
	return string(t)
}

// ParseTag resolves a tag name case-insensitively. Brackets are optional.
func ParseTag(s string) (Tag, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	for _, t := range TagPriority {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tag %q (want one of %s)", s, strings.Join(RecognizedMarkers(), ", "))
}

// RecognizedMarkers lists every marker in priority order
func RecognizedMarkers() []string {
	markers := make([]string, len(TagPriority))
	for i, t := range TagPriority {
		markers[i] = t.Marker()
	}
	return markers
}

// RoutingOutcome is either Routed(tag) or Unrouted
type RoutingOutcome struct {
	Tag    Tag  `json:"tag,omitempty"`
	Routed bool `json:"routed"`
}

// Routed builds an outcome selecting tag
func Routed(tag Tag) RoutingOutcome {
	return RoutingOutcome{Tag: tag, Routed: true}
}

// Unrouted builds the outcome for a message with no recognized marker
func Unrouted() RoutingOutcome {
	return RoutingOutcome{}
}

func (o RoutingOutcome) String() string {
	if !o.Routed {
		return "unrouted"
	}
	return "routed(" + string(o.Tag) + ")"
}
