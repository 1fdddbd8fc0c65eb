package application

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	QueryKeyAuth        = "auth"
	QueryKeyUserProfile = "userProfile"

	DefaultQueryStaleTime = 5 * time.Minute
	defaultQueryCacheSize = 64
)

// QueryCache keeps fetched server state for a bounded time.
type QueryCache struct {
	entries *expirable.LRU[string, any]
}

func NewQueryCache(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultQueryStaleTime
	}
	return &QueryCache{entries: expirable.NewLRU[string, any](defaultQueryCacheSize, nil, ttl)}
}

func ProfileQueryKey(email string) string {
	return QueryKeyUserProfile + ":" + email
}

func (c *QueryCache) Get(key string) (any, bool) {
	return c.entries.Get(key)
}

func (c *QueryCache) Set(key string, value any) {
	c.entries.Add(key, value)
}

func (c *QueryCache) Remove(key string) {
	c.entries.Remove(key)
}

// RemovePrefix evicts every key equal to prefix or scoped under it.
func (c *QueryCache) RemovePrefix(prefix string) {
	for _, key := range c.entries.Keys() {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			c.entries.Remove(key)
		}
	}
}

func (c *QueryCache) Len() int {
	return c.entries.Len()
}
