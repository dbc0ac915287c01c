// ABOUTME: Retry utilities for API calls with exponential backoff
// ABOUTME: Sleeper indirection keeps backoff testable without real delays
package util

import (
	"math/rand/v2"
	"time"
)

// Sleeper pauses the caller for the given duration. Production code passes
// time.Sleep; tests pass a recorder.
type Sleeper func(d time.Duration)

// BackoffDelay returns the delay before retrying after the given failed
// attempt (1-based): base doubled per attempt, plus a uniform jitter in
// [0, 1s). Attempt 1 with a 1s base yields 1s, then 2s, then 4s.
func BackoffDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt-1))
	jitter := time.Duration(rand.Int64N(int64(time.Second)))
	return backoff + jitter
}
