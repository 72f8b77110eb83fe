// SPDX-License-Identifier: MIT

package execution

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryTTL sets how long executions live. Zero disables expiry.
// Panics on a negative duration.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	if ttl < 0 {
		panic("execution: WithMemoryTTL(negative)")
	}
	return func(s *MemoryStore) { s.ttl = ttl }
}

// WithClock replaces time.Now for expiry checks. Panics on nil.
func WithClock(now func() time.Time) MemoryOption {
	if now == nil {
		panic("execution: WithClock(nil)")
	}
	return func(s *MemoryStore) { s.now = now }
}

type memoryEntry struct {
	exec    *Execution
	expires time.Time
}

// MemoryStore keeps executions in process memory and expires them lazily on
// read and list.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty store with no expiry unless configured.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *MemoryStore) expired(e memoryEntry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Create stores e, replacing any execution with the same ID.
func (s *MemoryStore) Create(_ context.Context, e *Execution) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	entry := memoryEntry{exec: e}
	if s.ttl > 0 {
		entry.expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[e.ID] = entry
	s.mu.Unlock()

	return nil
}

// Get returns the execution stored under id.
func (s *MemoryStore) Get(_ context.Context, id string) (*Execution, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.expired(entry, s.now()) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return entry.exec, nil
}

// Delete removes the execution stored under id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || s.expired(entry, s.now()) {
		delete(s.entries, id)
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.entries, id)

	return nil
}

// List prunes expired executions and returns the rest oldest first.
func (s *MemoryStore) List(_ context.Context) ([]Summary, error) {
	now := s.now()

	s.mu.Lock()
	out := make([]Summary, 0, len(s.entries))
	for id, entry := range s.entries {
		if s.expired(entry, now) {
			delete(s.entries, id)
			continue
		}
		out = append(out, entry.exec.Summary())
	}
	s.mu.Unlock()

	sortSummaries(out)

	return out, nil
}

func sortSummaries(out []Summary) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
