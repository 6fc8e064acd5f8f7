package correlator

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending attempts in process memory.
// Suitable for a single instance; use RedisStore when running several.
type MemoryStore struct {
	mu      sync.Mutex
	pending map[string]Pending
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pending: make(map[string]Pending),
		now:     time.Now,
	}
}

// Save stores p for binding and sweeps expired attempts
func (s *MemoryStore) Save(_ context.Context, binding string, p Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, v := range s.pending {
		if v.Expired(now) {
			delete(s.pending, k)
		}
	}
	s.pending[binding] = p
	return nil
}

// Take removes and returns the attempt for binding
func (s *MemoryStore) Take(_ context.Context, binding string) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[binding]
	if !ok {
		return nil, nil
	}
	delete(s.pending, binding)

	if p.Expired(s.now()) {
		return nil, nil
	}
	return &p, nil
}

// Len returns the number of attempts currently held
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
