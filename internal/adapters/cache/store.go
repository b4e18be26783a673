// Package cache provides a bounded in-memory store for computed bundles.
//
// Charts for a fixed birth input never change, but bundles also carry the
// live Sade Sati status, so entries expire on a TTL rather than living
// forever. Eviction is oldest-first once the entry cap is reached.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/pkg/logger"
	"github.com/okian/jyotish/pkg/metrics"
)

// Default cache configuration constants.
const (
	defaultMaxEntries = 1024
	defaultTTL        = time.Hour
)

type entry struct {
	bundle    model.KundaliBundle
	storedAt  time.Time
	expiresAt time.Time
}

// Store is a mutex-guarded bundle cache with TTL expiry and oldest-first
// eviction.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	order      []string
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
	log        logger.Logger
}

// New creates a cache store with configuration options.
func New(opts ...Option) *Store {
	s := &Store{
		entries:    make(map[string]entry),
		maxEntries: defaultMaxEntries,
		ttl:        defaultTTL,
		now:        time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateCacheSize(0)

	return s
}

// Get returns the cached bundle for key. ErrNotFound covers both absent
// and expired entries; expired entries are dropped on the way out.
func (s *Store) Get(ctx context.Context, key string) (model.KundaliBundle, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && s.now().Before(e.expiresAt) {
		metrics.RecordCacheHit()
		return e.bundle, nil
	}

	if ok {
		s.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// replaced the entry since the read.
		if cur, still := s.entries[key]; still && !s.now().Before(cur.expiresAt) {
			s.remove(key)
			if s.log != nil {
				s.log.Debug(ctx, "expired cache entry dropped", logger.String("key", key))
			}
		}
		s.mu.Unlock()
	}

	metrics.RecordCacheMiss()
	return model.KundaliBundle{}, ErrNotFound
}

// Put stores a bundle under key, evicting the oldest entry when full.
func (s *Store) Put(ctx context.Context, key string, bundle model.KundaliBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		for len(s.entries) >= s.maxEntries && len(s.order) > 0 {
			oldest := s.order[0]
			s.remove(oldest)
			if s.log != nil {
				s.log.Debug(ctx, "evicted oldest cache entry", logger.String("key", oldest))
			}
		}
		s.order = append(s.order, key)
	}

	now := s.now()
	s.entries[key] = entry{
		bundle:    bundle,
		storedAt:  now,
		expiresAt: now.Add(s.ttl),
	}
	metrics.UpdateCacheSize(len(s.entries))
}

// Len returns the number of cached bundles, including not-yet-dropped
// expired entries.
func (s *Store) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Purge drops every entry.
func (s *Store) Purge(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
	s.order = s.order[:0]
	metrics.UpdateCacheSize(0)
}

// remove deletes key from both the map and the insertion order.
// Callers must hold the write lock.
func (s *Store) remove(key string) {
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	metrics.UpdateCacheSize(len(s.entries))
}
