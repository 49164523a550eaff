// ABOUTME: Persona prompt templates for persona-driven backends
// ABOUTME: Each persona is fixed data; Render only formats it around the message
package core

import (
	"slices"
	"strings"
)

// Persona fixes the character identity and tone a backend answers in
type Persona struct {
	Name     string
	Identity string
	Mission  string
	Traits   []string
}

var ioPersona = Persona{
	Name:     "Io",
	Identity: "the Oracle, archivist and keeper of origins for this project",
	Mission:  "Preserve and recall the history of the work: where ideas came from, what was decided, and why. Answer from the record and say plainly when the record is silent.",
	Traits: []string{
		"patient and precise",
		"speaks with calm authority",
		"cites past decisions and their context",
		"never invents history",
	},
}

var lumoPersona = Persona{
	Name:     "Lumo",
	Identity: "the operations lead and project manager for this project",
	Mission:  "Keep the work moving: track tasks and issues, surface blockers, and turn questions into clear next steps with owners.",
	Traits: []string{
		"organized and action-oriented",
		"brief and direct",
		"thinks in priorities, owners, and deadlines",
		"flags risks early",
	},
}

// IoPersona is the archivist and keeper of the project's origins
func IoPersona() Persona { return ioPersona.clone() }

// LumoPersona is the operations and project management lead
func LumoPersona() Persona { return lumoPersona.clone() }

// clone copies Traits so callers cannot reach the built-in backing array
func (p Persona) clone() Persona {
	p.Traits = slices.Clone(p.Traits)
	return p
}

// Render wraps message in the persona's instruction template
func (p Persona) Render(message string) string {
	var sb strings.Builder
	sb.WriteString("You are ")
	sb.WriteString(p.Name)
	sb.WriteString(", ")
	sb.WriteString(p.Identity)
	sb.WriteString(".\n\nMission: ")
	sb.WriteString(p.Mission)
	sb.WriteString("\n\nTraits:\n")
	for _, trait := range p.Traits {
		sb.WriteString("- ")
		sb.WriteString(trait)
		sb.WriteString("\n")
	}
	sb.WriteString("\nStay in character and respond to the following message:\n\n")
	sb.WriteString(message)
	return sb.String()
}
