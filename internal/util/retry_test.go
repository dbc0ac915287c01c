// ABOUTME: Tests for backoff calculation
// ABOUTME: Validates doubling schedule, jitter bounds, and degenerate attempts
package util

import (
	"testing"
	"time"
)

func TestBackoffDelay_ZeroAttempt(t *testing.T) {
	if got := BackoffDelay(time.Second, 0); got != 0 {
		t.Errorf("BackoffDelay(1s, 0) = %v, want 0", got)
	}
	if got := BackoffDelay(time.Second, -3); got != 0 {
		t.Errorf("BackoffDelay(1s, -3) = %v, want 0", got)
	}
}

func TestBackoffDelay_DoublingSchedule(t *testing.T) {
	base := time.Second
	for attempt := 1; attempt <= 3; attempt++ {
		expected := base * time.Duration(1<<uint(attempt-1))
		got := BackoffDelay(base, attempt)
		if got < expected || got >= expected+time.Second {
			t.Errorf("attempt %d: BackoffDelay = %v, want in [%v, %v)",
				attempt, got, expected, expected+time.Second)
		}
	}
}

func TestBackoffDelay_LargeAttemptDoesNotOverflow(t *testing.T) {
	got := BackoffDelay(time.Millisecond, 500)
	if got <= 0 {
		t.Errorf("BackoffDelay(1ms, 500) = %v, want positive", got)
	}
}
