package adapter

import (
	"context"
	"time"

	"rurallearn/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCacheAdapter is an in-process domain.Cache used when no Redis
// address is configured. Expired entries are invisible to Get and are
// removed by the cache's janitor every cleanup interval.
type MemoryCacheAdapter struct {
	store *gocache.Cache
}

// NewMemoryCacheAdapter creates an empty in-process cache whose janitor runs
// every cleanupInterval. A non-positive interval disables the janitor.
func NewMemoryCacheAdapter(cleanupInterval time.Duration) *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return s, nil
}

// Set stores value. A zero expiration keeps the entry until it is deleted.
func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	m.store.Set(key, value, expiration)
	return nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(context.Context) error {
	return nil
}

// Len reports the number of stored entries, including expired ones the
// janitor has not removed yet.
func (m *MemoryCacheAdapter) Len() int {
	return m.store.ItemCount()
}
