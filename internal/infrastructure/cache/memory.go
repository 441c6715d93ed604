package cache

import (
	"sync"
	"time"
)

// MemoryStore is a small in-memory key-value store with optional expiration
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]*memoryItem[T]
	now   func() time.Time
}

type memoryItem[T any] struct {
	value      T
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		items: make(map[string]*memoryItem[T]),
		now:   time.Now,
	}
}

// Set stores a value. A zero expiration keeps it until replaced.
func (ms *MemoryStore[T]) Set(key string, value T, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem[T]{value: value}
	if expiration > 0 {
		item.expireTime = ms.now().Add(expiration)
	}
	ms.items[key] = item
	ms.removeExpiredLocked()
}

// Get retrieves a value by key (zero value and false if not found or expired)
func (ms *MemoryStore[T]) Get(key string) (T, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var zero T
	item, exists := ms.items[key]
	if !exists || ms.expired(item) {
		return zero, false
	}
	return item.value, true
}

func (ms *MemoryStore[T]) expired(item *memoryItem[T]) bool {
	return !item.expireTime.IsZero() && ms.now().After(item.expireTime)
}

// removeExpiredLocked drops expired items; callers hold the write lock
func (ms *MemoryStore[T]) removeExpiredLocked() {
	for key, item := range ms.items {
		if ms.expired(item) {
			delete(ms.items, key)
		}
	}
}
