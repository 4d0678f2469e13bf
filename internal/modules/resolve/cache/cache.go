package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	contentDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	resolveDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
)

// Entry is a memoized resolution outcome: either content or a permanent
// failure. Transient failures are never stored so a later request always
// retries them.
type Entry struct {
	Content *contentDomain.Content
	Failure *resolveDomain.Failure
}

// Cache memoizes resolution outcomes per canonical reference key, bounded
// in size with LRU eviction and lazily expired by TTL. The expirable LRU
// keeps at most one entry per key and is safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[linkDomain.Key, Entry]
}

// New creates a cache holding up to size entries for ttl each.
func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[linkDomain.Key, Entry](size, nil, ttl),
	}
}

// Get returns the memoized outcome for key, if present and fresh.
func (c *Cache) Get(key linkDomain.Key) (Entry, bool) {
	return c.lru.Get(key)
}

// PutContent stores a successful resolution.
func (c *Cache) PutContent(key linkDomain.Key, content contentDomain.Content) {
	c.lru.Add(key, Entry{Content: &content})
}

// PutFailure stores a permanent failure. Non-permanent failures are
// silently dropped.
func (c *Cache) PutFailure(key linkDomain.Key, failure *resolveDomain.Failure) {
	if failure == nil || failure.Kind != resolveDomain.FailureKindPermanent {
		return
	}
	c.lru.Add(key, Entry{Failure: failure})
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
