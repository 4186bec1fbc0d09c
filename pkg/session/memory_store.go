package session

import (
	"context"
	"sync"
)

// MemoryStore is the default HistoryStore, keeping transcripts in process
// memory. A single lock serializes writers so a Clear never interleaves with
// a partially applied Append.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

var _ HistoryStore = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Turn),
	}
}

func (s *MemoryStore) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(turns) == 0 {
		return nil
	}

	stamped := stampTurns(turns)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], stamped...)
	return nil
}

func (s *MemoryStore) GetHistory(ctx context.Context, sessionID string) ([]Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.sessions[sessionID]
	// Copy so callers never observe later appends through the shared slice.
	history := make([]Turn, len(stored))
	copy(history, stored)
	return history, nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
