// ABOUTME: Session is the single active document's text, index, and character roster
// ABOUTME: SessionHolder publishes fully-built sessions with one atomic pointer swap
package storage

import (
	"sync/atomic"
	"time"
)

// Session holds everything derived from one uploaded document. Sessions are
// built fully off to the side and never mutated after publication.
type Session struct {
	Text       string
	Index      *Index
	Characters []string
	CreatedAt  time.Time
}

// NewSession creates a session over an already-built index.
func NewSession(text string, index *Index, characters []string) *Session {
	return &Session{
		Text:       text,
		Index:      index,
		Characters: characters,
		CreatedAt:  time.Now().UTC(),
	}
}

// SessionHolder owns the process-wide current session. Readers see either
// the fully-old or fully-new session, never a partial one.
type SessionHolder struct {
	current atomic.Pointer[Session]
}

// NewSessionHolder creates a holder with no active session.
func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Current returns the active session, or nil before the first upload.
func (h *SessionHolder) Current() *Session {
	return h.current.Load()
}

// Publish replaces the active session wholesale.
func (h *SessionHolder) Publish(s *Session) {
	h.current.Store(s)
}
