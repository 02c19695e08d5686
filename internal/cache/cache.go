// Package cache provides a small in-memory memoization layer used by
// the cached search mode to avoid re-scanning the catalog for repeated
// terms.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"alembic/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Manager is a typed wrapper around an in-memory cache.
type Manager[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewManager initializes the in-memory cache for a named use case.
func NewManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *Manager[V] {
	return &Manager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (m *Manager[V]) Get(key string) (V, bool) {
	var zero V

	value, found := m.cache.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "useCase", m.useCase, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "useCase", m.useCase, "key", key)
	return v, true
}

// Set stores a value under key with the default TTL.
func (m *Manager[V]) Set(key string, value V) {
	m.cache.Set(key, value, gocache.DefaultExpiration)
}

// Flush drops every cached entry.
func (m *Manager[V]) Flush() {
	m.cache.Flush()
}
