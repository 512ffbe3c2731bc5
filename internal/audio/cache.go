package audio

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CachingEngine memoizes Event lookups by path. Descriptions are immutable
// for the lifetime of a loaded bank, so only a bank reload needs Flush.
type CachingEngine struct {
	next  Engine
	cache *cache.Cache
}

// NewCachingEngine wraps next. A ttl of zero keeps descriptions until Flush.
func NewCachingEngine(next Engine, ttl time.Duration) *CachingEngine {
	expiration := ttl
	cleanup := 2 * ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}
	return &CachingEngine{
		next:  next,
		cache: cache.New(expiration, cleanup),
	}
}

// Event returns the cached description for path, resolving it on a miss.
// Failed lookups are not cached.
func (c *CachingEngine) Event(path string) (Description, error) {
	if d, ok := c.cache.Get(path); ok {
		return d.(Description), nil
	}
	d, err := c.next.Event(path)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, d)
	return d, nil
}

// Flush drops every cached description.
func (c *CachingEngine) Flush() {
	c.cache.Flush()
}

// Len returns the number of cached descriptions.
func (c *CachingEngine) Len() int {
	return c.cache.ItemCount()
}
