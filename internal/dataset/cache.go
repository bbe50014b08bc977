package dataset

import (
	"sync"
	"time"
)

// Cache holds the merged master record set. The batch merge is expensive
// relative to request handling, so it runs once and is reused until the TTL
// lapses or Invalidate is called. A zero TTL means records never expire.
//
// Construct one Cache at startup and pass it by reference; request handlers
// must not re-merge on their own.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	load     func() ([]Course, error)
	records  []Course
	loadedAt time.Time
}

// NewCache wraps a load function (typically LoadSources + Merge) with
// load-once semantics.
func NewCache(ttl time.Duration, load func() ([]Course, error)) *Cache {
	return &Cache{ttl: ttl, load: load}
}

// Records returns the master record set, loading it on first use or after
// expiry. Callers treat the returned slice as read-only.
func (c *Cache) Records() ([]Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records != nil && !c.expired() {
		return c.records, nil
	}

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	c.records = records
	c.loadedAt = time.Now()
	return c.records, nil
}

// Invalidate drops the cached record set; the next Records call reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
}

func (c *Cache) expired() bool {
	return c.ttl > 0 && time.Since(c.loadedAt) > c.ttl
}
