package cache

import (
	"context"
	"sync"
	"time"
)

const defaultCleanupInterval = 5 * time.Minute

// MemoryStore is a simple in-memory key-value store with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time // zero means no expiration
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return newMemoryStore(defaultCleanupInterval, time.Now)
}

func newMemoryStore(cleanupInterval time.Duration, now func() time.Time) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		now:   now,
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(cleanupInterval)

	return store
}

// Set stores a key-value pair with expiration
func (ms *MemoryStore) Set(_ context.Context, key string, value []byte, expiration time.Duration) error {
	item := &memoryItem{value: append([]byte(nil), value...)}
	if expiration > 0 {
		item.expireTime = ms.now().Add(expiration)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = item
	return nil
}

// Get retrieves a value by key, returning ErrCacheMiss if not found or expired
func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || item.expired(ms.now()) {
		return nil, ErrCacheMiss
	}

	return append([]byte(nil), item.value...), nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.stopOnce.Do(func() { close(ms.stop) })
	return nil
}

func (it *memoryItem) expired(now time.Time) bool {
	return !it.expireTime.IsZero() && now.After(it.expireTime)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.removeExpired()
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, item := range ms.items {
		if item.expired(now) {
			delete(ms.items, key)
		}
	}
}
