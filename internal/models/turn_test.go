// ABOUTME: Tests for Turn creation
// ABOUTME: Verifies ID format, timestamps, and field assignment
package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewTurn(t *testing.T) {
	before := time.Now().UTC()
	turn := NewTurn("hello", "well met, traveler")

	if turn.UserMessage != "hello" {
		t.Errorf("UserMessage = %q, want %q", turn.UserMessage, "hello")
	}
	if turn.Reply != "well met, traveler" {
		t.Errorf("Reply = %q, want %q", turn.Reply, "well met, traveler")
	}
	if !strings.HasPrefix(turn.TurnID, "turn_") {
		t.Errorf("TurnID = %q, want turn_ prefix", turn.TurnID)
	}
	if turn.Timestamp.Before(before.Add(-time.Second)) {
		t.Errorf("Timestamp = %v, want >= %v", turn.Timestamp, before)
	}
}

func TestNewTurn_UniqueIDs(t *testing.T) {
	a := NewTurn("one", "1")
	b := NewTurn("two", "2")
	if a.TurnID == b.TurnID {
		t.Errorf("two turns share TurnID %q", a.TurnID)
	}
}
