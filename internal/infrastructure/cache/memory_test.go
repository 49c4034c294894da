package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_Expiration(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	store := newMemoryStore(time.Hour, clock.Now)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, "forever", []byte("b"), 0))

	clock.Advance(2 * time.Minute)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := store.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)

	store.removeExpired()
	store.mu.RLock()
	assert.Len(t, store.items, 1)
	store.mu.RUnlock()
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
