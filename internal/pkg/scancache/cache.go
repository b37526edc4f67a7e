// Package scancache deduplicates rapid repeat scans of the same badge.
// It is a latency/UX optimization only: the (employee_id, date) unique
// constraint in the attendance table is the correctness mechanism, and this
// cache must never be relied on for it.
package scancache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time
}

type Cache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Seen reports whether the key was marked within the TTL, and marks it.
func (c *Cache) Seen(key string) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && now.Before(e.expiresAt) {
		return true
	}
	c.entries[key] = entry{expiresAt: now.Add(c.ttl)}
	return false
}

// Forget drops a key so a follow-up scan is accepted immediately.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of live entries. Test helper.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// StartJanitor sweeps expired entries until ctx is cancelled.
func (c *Cache) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Debug("scan cache janitor stopping")
				return
			case now := <-ticker.C:
				c.sweep(now)
			}
		}
	}()
}
