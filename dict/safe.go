package dict

import (
	"sync"

	"github.com/turboMaCk/any-dict/optional"
	"github.com/turboMaCk/any-dict/sortable"
	"go.uber.org/atomic"
)

// Safe wraps a Dict for shared use across goroutines: reads take a shared
// lock and may proceed concurrently, mutations take an exclusive lock so the
// sort key and the stored (key, value) pair are always updated atomically.
//
// Every mutation bumps a generation counter. Callers caching derived data can
// compare Generation results to detect changes without holding the lock.
type Safe[K any, C sortable.Sortable[C], V any] struct {
	mutex      sync.RWMutex
	dict       *Dict[K, C, V]
	generation atomic.Int64
}

// NewSafe wraps d with lock-protected access. The wrapped dictionary must not
// be used directly afterwards.
func NewSafe[K any, C sortable.Sortable[C], V any](d *Dict[K, C, V]) *Safe[K, C, V] {
	return &Safe[K, C, V]{dict: d}
}

// Generation returns the mutation counter. It increases by at least one for
// every completed mutation.
func (s *Safe[K, C, V]) Generation() int64 {
	return s.generation.Load()
}

// Add inserts or replaces the entry for key under an exclusive lock.
func (s *Safe[K, C, V]) Add(key K, value V) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dict.Add(key, value)
	s.generation.Inc()
}

// Update adjusts the entry at key's sort key through fn under an exclusive lock.
func (s *Safe[K, C, V]) Update(key K, fn func(optional.Value[V]) optional.Value[V]) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dict.Update(key, fn)
	s.generation.Inc()
}

// Remove deletes the entry at key's sort key under an exclusive lock.
func (s *Safe[K, C, V]) Remove(key K) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dict.Remove(key)
	s.generation.Inc()
}

// Clear removes all entries under an exclusive lock.
func (s *Safe[K, C, V]) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dict.Clear()
	s.generation.Inc()
}

// Get returns the value stored at key's sort key under a shared lock.
func (s *Safe[K, C, V]) Get(key K) (V, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.Get(key)
}

// GetKey returns the stored key at key's sort key under a shared lock.
func (s *Safe[K, C, V]) GetKey(key K) (K, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.GetKey(key)
}

// Contains reports whether an entry exists at key's sort key under a shared lock.
func (s *Safe[K, C, V]) Contains(key K) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.Contains(key)
}

// Size returns the number of entries under a shared lock.
func (s *Safe[K, C, V]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.Size()
}

// IsEmpty reports whether the dictionary is empty under a shared lock.
func (s *Safe[K, C, V]) IsEmpty() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.IsEmpty()
}

// Pairs returns the association list in ascending sort-key order under a
// shared lock.
func (s *Safe[K, C, V]) Pairs() []Pair[K, V] {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.Pairs()
}

// Snapshot returns an independent copy of the wrapped dictionary, taken under
// a shared lock. The copy can be iterated or transformed without further
// locking.
func (s *Safe[K, C, V]) Snapshot() *Dict[K, C, V] {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.dict.clone()
}
