package cache

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a process-wide in-memory view store. The write lock taken by
// Set and Invalidate establishes the happens-before edge the Store contract
// requires: a Get that starts after Invalidate returns sees the empty owner.
// Each Invalidate bumps the owner's epoch under the same lock, so a Set
// carrying an epoch captured before the invalidation is rejected.
type MemoryStore struct {
	mu     sync.RWMutex
	views  map[uuid.UUID]map[string]any
	epochs map[uuid.UUID]uint64
}

// NewMemoryStore creates an empty in-memory view store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		views:  make(map[uuid.UUID]map[string]any),
		epochs: make(map[uuid.UUID]uint64),
	}
}

// Get retrieves a cached view for an owner.
func (s *MemoryStore) Get(ownerID uuid.UUID, view string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.views[ownerID]
	if !ok {
		return nil, false
	}
	value, ok := owner[view]
	return value, ok
}

// Set stores a computed view for an owner. The value is silently discarded
// when the owner's epoch has advanced past the given one, meaning an
// invalidation ran while the view was being computed and the value may
// reflect pre-mutation rows.
func (s *MemoryStore) Set(ownerID uuid.UUID, view string, value any, epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epochs[ownerID] != epoch {
		return
	}

	owner, ok := s.views[ownerID]
	if !ok {
		owner = make(map[string]any)
		s.views[ownerID] = owner
	}
	owner[view] = value
}

// Epoch returns the owner's current invalidation epoch. Capture it before
// fetching the rows a view is computed from and pass it to Set.
func (s *MemoryStore) Epoch(ownerID uuid.UUID) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.epochs[ownerID]
}

// Invalidate drops every cached view for an owner and advances the owner's
// epoch. Invalidating an owner with nothing cached is a no-op for the views
// but still advances the epoch, so in-flight computes that started earlier
// cannot write back. The in-memory store cannot fail; the error return exists
// for remote-backend implementations of Store.
func (s *MemoryStore) Invalidate(ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.views, ownerID)
	s.epochs[ownerID]++
	return nil
}

// Size returns the number of owners with at least one cached view.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.views)
}
