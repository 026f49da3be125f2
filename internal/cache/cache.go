package cache

import (
	"sync"
	"sync/atomic"
)

// Store is a generic append-only cache. Entries are inserted at most once,
// on first successful creation, and are never evicted, replaced or removed.
//
// Store is safe for concurrent use. GetOrCreate holds the store lock while
// calling create, so at most one creation is in flight per Store.
// Store must not be copied after creation (has mutex).
type Store[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V

	hits       atomic.Uint64
	misses     atomic.Uint64
	insertions atomic.Uint64
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the store.
// Returns (value, true) if found, (zero, false) otherwise.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

// GetOrCreate returns the stored value for key, or calls create on a miss.
// The created value is stored only when create reports ok; a failed creation
// leaves no entry, so the next call for the same key calls create again.
func (s *Store[K, V]) GetOrCreate(key K, create func() (V, bool)) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries[key]; ok {
		s.hits.Add(1)
		return v, true
	}
	s.misses.Add(1)

	v, ok := create()
	if !ok {
		var zero V
		return zero, false
	}

	s.entries[key] = v
	s.insertions.Add(1)
	return v, true
}

// Len returns the number of entries in the store.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Keys returns the stored keys in unspecified order.
func (s *Store[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns store statistics.
func (s *Store[K, V]) Stats() Stats {
	return Stats{
		Len:        s.Len(),
		Hits:       s.hits.Load(),
		Misses:     s.misses.Load(),
		Insertions: s.insertions.Load(),
	}
}

// Stats contains store statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups answered from the store.
	Hits uint64
	// Misses is the number of lookups that found no entry.
	Misses uint64
	// Insertions is the number of entries ever created.
	Insertions uint64
}

// HitRate returns the hit rate as a percentage.
// Returns 0 if there are no accesses.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}
