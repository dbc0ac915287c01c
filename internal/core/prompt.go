// ABOUTME: Prompt assembly for in-character replies grounded in book context
// ABOUTME: Pure function of character, history window, retrieved chunks, and message
package core

import (
	"fmt"
	"strings"

	"bookchat/internal/models"
)

// BuildPrompt composes the single text prompt sent to the generation
// service. Same inputs always yield the same output.
func BuildPrompt(character string, history []models.Turn, contextChunks []string, message string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are the character '%s' from the uploaded book.\n", character))
	sb.WriteString("Only respond as this character would, based on the events, personality, and worldview in the book context below. Keep replies conversational.\n")
	sb.WriteString("If the context does not give you enough to answer, admit it gracefully in character rather than inventing facts.\n\n")

	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, turn := range history {
			sb.WriteString(fmt.Sprintf("User: %s\n", turn.UserMessage))
			sb.WriteString(fmt.Sprintf("%s: %s\n", character, turn.Reply))
		}
		sb.WriteString("\n")
	}

	if len(contextChunks) > 0 {
		sb.WriteString("Book context:\n")
		sb.WriteString(strings.Join(contextChunks, "\n---\n"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("User: %s\n", message))
	sb.WriteString(fmt.Sprintf("%s:", character))

	return sb.String()
}
