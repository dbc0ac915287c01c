// ABOUTME: Turn represents one user-message/character-reply exchange
// ABOUTME: Core data structure for per-character conversation history
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Turn is a single exchange in a character conversation. Immutable once
// appended to a history log.
type Turn struct {
	TurnID      string    `json:"turn_id"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"user_message"`
	Reply       string    `json:"reply"`
}

// NewTurn creates a Turn stamped with the current time and a unique ID.
func NewTurn(userMessage, reply string) Turn {
	return Turn{
		TurnID:      generateTurnID(),
		Timestamp:   time.Now().UTC(),
		UserMessage: userMessage,
		Reply:       reply,
	}
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
