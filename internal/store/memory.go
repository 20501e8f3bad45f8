package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memEntry struct {
	run       *Run
	expiresAt time.Time
}

// MemoryStore is the default store when no Redis URL is configured. Runs are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]memEntry
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryStore returns a store that forgets runs after ttl. ttl <= 0 keeps them forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]memEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, r *Run) (string, error) {
	if r == nil {
		return "", errors.New("run is nil")
	}
	now := s.now()
	prepare(r, now)

	e := memEntry{run: r}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, old := range s.runs {
		if s.expired(old, now) {
			delete(s.runs, id)
		}
	}
	s.runs[r.ID] = e
	return r.ID, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.runs[id]
	if !ok || s.expired(e, s.now()) {
		return nil, ErrNotFound
	}
	return e.run, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

func (s *MemoryStore) expired(e memEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
