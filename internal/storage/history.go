// ABOUTME: HistoryStore keeps per-character conversation logs in memory
// ABOUTME: Append-only, windowed reads, reset wholesale on each upload
package storage

import (
	"sync"

	"bookchat/internal/models"
)

// HistoryStore maps character names to ordered conversation logs. Logs are
// append-only and oldest-first; all turns are retained even though prompts
// only read the trailing window.
type HistoryStore struct {
	mu   sync.RWMutex
	logs map[string][]models.Turn
}

// NewHistoryStore creates an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{logs: make(map[string][]models.Turn)}
}

// Append adds a turn to the character's log, creating the log if the
// character is not yet known.
func (h *HistoryStore) Append(character, userMessage, reply string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs[character] = append(h.logs[character], models.NewTurn(userMessage, reply))
}

// Recent returns the last n turns for the character, oldest-first, or fewer
// if the log is shorter. An unknown character yields an empty slice.
func (h *HistoryStore) Recent(character string, n int) []models.Turn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	log := h.logs[character]
	if n <= 0 || len(log) == 0 {
		return nil
	}
	if n > len(log) {
		n = len(log)
	}
	out := make([]models.Turn, n)
	copy(out, log[len(log)-n:])
	return out
}

// Reset replaces the entire mapping with empty logs keyed by the given
// character names, discarding all prior history.
func (h *HistoryStore) Reset(characters []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logs = make(map[string][]models.Turn, len(characters))
	for _, name := range characters {
		h.logs[name] = nil
	}
}

// Len returns the total number of turns for the character.
func (h *HistoryStore) Len(character string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.logs[character])
}
