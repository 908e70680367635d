package cache

import "sync"

// Memo is a concurrency-safe map of computed values. A positive maxEntries
// bounds its size; once full, new keys are computed but not stored.
type Memo[K comparable, V any] struct {
	mu         sync.RWMutex
	entries    map[K]V
	maxEntries int
}

func NewMemo[K comparable, V any](maxEntries int) *Memo[K, V] {
	return &Memo[K, V]{
		entries:    make(map[K]V),
		maxEntries: maxEntries,
	}
}

func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

func (m *Memo[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		return
	}
	m.entries[key] = value
}

// GetOrCompute returns the stored value for key, computing and storing it on
// a miss. Racing callers may each compute; the last write wins.
func (m *Memo[K, V]) GetOrCompute(key K, compute func(K) V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := compute(key)
	m.Set(key, v)
	return v
}

func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memo[K, V]) Reset() {
	m.mu.Lock()
	m.entries = make(map[K]V)
	m.mu.Unlock()
}
