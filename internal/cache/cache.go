// Package cache holds a small read-through cache for the summary endpoints,
// which fan out over several tables and are hit by dashboards on a refresh
// interval.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryTTL = 60 * time.Second

// SummaryCache wraps a redis client. A nil receiver or nil client disables
// caching, so callers never need to branch.
type SummaryCache struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSummaryCache(rdb *redis.Client, ctx context.Context) *SummaryCache {
	return &SummaryCache{rdb: rdb, ctx: ctx}
}

// Get unmarshals the cached payload for key into dest. The second return is
// false on a miss or when the cache is disabled.
func (c *SummaryCache) Get(key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	payload, err := c.rdb.Get(c.ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

// Set stores value under key with the summary TTL. Failures are ignored,
// the next read just recomputes.
func (c *SummaryCache) Set(key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(c.ctx, key, payload, summaryTTL)
}

// Invalidate drops the given keys.
func (c *SummaryCache) Invalidate(keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(c.ctx, keys...)
}
