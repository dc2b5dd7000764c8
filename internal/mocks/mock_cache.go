package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/planetarium-reservation-system/internal/cache"
)

// MockCache is an in-memory Cache used by the handler tests. Individual
// operations can be overridden through the func fields; unset fields fall
// back to the map-backed behavior. TTLs are ignored.
type MockCache struct {
	GetFunc              func(ctx context.Context, key string) ([]byte, error)
	SetFunc              func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidatePrefixFunc func(ctx context.Context, prefix string) error

	mu      sync.Mutex
	entries map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: map[string][]byte{},
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}

	return value, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value

	return nil
}

func (m *MockCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if m.InvalidatePrefixFunc != nil {
		return m.InvalidatePrefixFunc(ctx, prefix)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.entries, key)
		}
	}

	return nil
}

// Len reports the number of cached entries, for asserting invalidation.
func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
