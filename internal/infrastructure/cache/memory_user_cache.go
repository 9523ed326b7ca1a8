package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/restaurant/backend/internal/domain/reservation/acl"
)

// entry represents a cached user reference with expiration
type entry struct {
	ref       acl.UserReference
	expiresAt time.Time
}

// InMemoryUserReferenceCache implements UserReferenceCache using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryUserReferenceCache struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]entry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryUserReferenceCache creates a new in-memory user reference cache
// It starts a background goroutine to clean up expired entries
func NewInMemoryUserReferenceCache(ttl time.Duration) *InMemoryUserReferenceCache {
	cache := &InMemoryUserReferenceCache{
		entries:  make(map[uuid.UUID]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	// Start cleanup goroutine
	cache.wg.Add(1)
	go cache.cleanupLoop()

	return cache
}

// Get retrieves a user reference from the cache
func (c *InMemoryUserReferenceCache) Get(_ context.Context, userCode uuid.UUID) (acl.UserReference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[userCode]
	if !exists {
		return acl.UserReference{}, false
	}

	// Expired entries are treated as misses; the cleanup loop removes them
	if time.Now().After(e.expiresAt) {
		return acl.UserReference{}, false
	}

	return e.ref, true
}

// Set stores a user reference with the configured TTL
func (c *InMemoryUserReferenceCache) Set(_ context.Context, ref acl.UserReference) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ref.UserCode] = entry{
		ref:       ref,
		expiresAt: time.Now().Add(c.ttl),
	}

	return nil
}

// Invalidate removes a user reference from the cache
func (c *InMemoryUserReferenceCache) Invalidate(_ context.Context, userCode uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userCode)
	return nil
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (c *InMemoryUserReferenceCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryUserReferenceCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries from the cache
func (c *InMemoryUserReferenceCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for userCode, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, userCode)
		}
	}
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryUserReferenceCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure InMemoryUserReferenceCache implements UserReferenceCache
var _ acl.UserReferenceCache = (*InMemoryUserReferenceCache)(nil)
