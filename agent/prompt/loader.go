package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/persona.txt
var personaRaw string

// Persona returns the trimmed system prompt for the reservation assistant.
func Persona() string {
	return strings.TrimSpace(personaRaw)
}
