// ABOUTME: Tests for prompt assembly
// ABOUTME: Verifies persona instruction, history rendering, context, and cue
package core

import (
	"strings"
	"testing"

	"bookchat/internal/models"
)

func TestBuildPrompt_Sections(t *testing.T) {
	history := []models.Turn{
		{UserMessage: "who are you?", Reply: "I am Gulliver."},
		{UserMessage: "where have you been?", Reply: "To Lilliput, among other places."},
	}
	chunks := []string{"context alpha", "context beta"}

	prompt := BuildPrompt("Gulliver", history, chunks, "tell me about the little people")

	if !strings.Contains(prompt, "You are the character 'Gulliver' from the uploaded book.") {
		t.Error("prompt missing persona instruction")
	}
	if !strings.Contains(prompt, "admit it gracefully") {
		t.Error("prompt missing insufficient-context instruction")
	}
	if !strings.Contains(prompt, "User: who are you?\nGulliver: I am Gulliver.") {
		t.Error("prompt missing first history turn in User/character form")
	}
	if !strings.Contains(prompt, "context alpha\n---\ncontext beta") {
		t.Error("prompt missing concatenated retrieved chunks")
	}
	if !strings.Contains(prompt, "User: tell me about the little people") {
		t.Error("prompt missing the new user message")
	}
	if !strings.HasSuffix(prompt, "Gulliver:") {
		t.Errorf("prompt does not end with the character cue, got tail %q", prompt[len(prompt)-20:])
	}
}

func TestBuildPrompt_HistoryChronological(t *testing.T) {
	history := []models.Turn{
		{UserMessage: "first", Reply: "one"},
		{UserMessage: "second", Reply: "two"},
	}
	prompt := BuildPrompt("Alice", history, nil, "third")

	iFirst := strings.Index(prompt, "User: first")
	iSecond := strings.Index(prompt, "User: second")
	iThird := strings.Index(prompt, "User: third")
	if iFirst == -1 || iSecond == -1 || iThird == -1 {
		t.Fatal("prompt missing turns")
	}
	if !(iFirst < iSecond && iSecond < iThird) {
		t.Errorf("turns out of order: %d, %d, %d", iFirst, iSecond, iThird)
	}
}

func TestBuildPrompt_EmptyHistoryAndContext(t *testing.T) {
	prompt := BuildPrompt("Alice", nil, nil, "hi")

	if strings.Contains(prompt, "Conversation so far:") {
		t.Error("prompt has a history section with no history")
	}
	if strings.Contains(prompt, "Book context:") {
		t.Error("prompt has a context section with no chunks")
	}
	if !strings.HasSuffix(prompt, "Alice:") {
		t.Error("prompt does not end with the character cue")
	}
}

func TestBuildPrompt_Pure(t *testing.T) {
	history := []models.Turn{{UserMessage: "a", Reply: "b"}}
	p1 := BuildPrompt("X", history, []string{"c"}, "d")
	p2 := BuildPrompt("X", history, []string{"c"}, "d")
	if p1 != p2 {
		t.Error("BuildPrompt is not deterministic for identical inputs")
	}
}
