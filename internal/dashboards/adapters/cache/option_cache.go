package cache

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"game-analytics-service/internal/pipeline"
)

// OptionCache is an expiring LRU of filter option lists.
type OptionCache struct {
	lru *expirable.LRU[string, []pipeline.Option]
}

// NewOptionCache holds at most size lists for ttl each. A ttl of 0 keeps
// entries until they are evicted by size.
func NewOptionCache(size int, ttl time.Duration) *OptionCache {
	return &OptionCache{lru: expirable.NewLRU[string, []pipeline.Option](size, nil, ttl)}
}

func (c *OptionCache) Get(key string) ([]pipeline.Option, bool) {
	opts, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(opts), true
}

func (c *OptionCache) Add(key string, opts []pipeline.Option) {
	c.lru.Add(key, slices.Clone(opts))
}

func (c *OptionCache) Len() int {
	return c.lru.Len()
}

func (c *OptionCache) Purge() {
	c.lru.Purge()
}
