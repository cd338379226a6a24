// Package prompt renders chat history into the text handed to the model.
package prompt

import (
	"strings"

	"ai-lab/backend/internal/model"
)

// BuildContext renders the last k entries oldest first, one "ROLE: content"
// line per entry. It returns "" when there is nothing to render.
func BuildContext(entries []model.Entry, k int) string {
	if k <= 0 || len(entries) == 0 {
		return ""
	}
	start := max(len(entries)-k, 0)

	var b strings.Builder
	for _, e := range entries[start:] {
		b.WriteString(string(e.Role))
		b.WriteString(": ")
		b.WriteString(e.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// Compose builds the prompt text sent to the model.
func Compose(userPrompt, context string) string {
	if context == "" {
		return userPrompt
	}
	return "Context: " + context + "\n\nUser: " + userPrompt
}
