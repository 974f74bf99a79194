package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is a read-through cache for serialized list responses. Each
// entity type has a version key that writes bump, so invalidation is a single
// INCR instead of a key scan. A nil CatalogCache or a failing Redis silently
// degrades to the database.
type CatalogCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCatalogCache creates a cache backed by redisClient. Pass nil to disable
// caching entirely.
func NewCatalogCache(redisClient *redis.Client) *CatalogCache {
	return &CatalogCache{
		redis: redisClient,
		ttl:   5 * time.Minute,
	}
}

// Get returns the cached payload for the given entity/filter combination, or
// false on a miss.
func (c *CatalogCache) Get(ctx context.Context, entity, category, search string) ([]byte, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	key, err := c.listKey(ctx, entity, category, search)
	if err != nil {
		return nil, false
	}
	payload, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores a list payload under the current version of the entity.
func (c *CatalogCache) Set(ctx context.Context, entity, category, search string, payload []byte) {
	if c == nil || c.redis == nil {
		return
	}
	key, err := c.listKey(ctx, entity, category, search)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("catalog cache: set %s failed: %v", key, err)
	}
}

// Invalidate bumps the entity version so every cached list for it expires.
func (c *CatalogCache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Incr(ctx, c.versionKey(entity)).Err(); err != nil {
		log.Printf("catalog cache: invalidate %s failed: %v", entity, err)
	}
}

func (c *CatalogCache) listKey(ctx context.Context, entity, category, search string) (string, error) {
	version, err := c.redis.Get(ctx, c.versionKey(entity)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("catalog:%s:v%d:list:%s:%s", entity, version, category, search), nil
}

func (c *CatalogCache) versionKey(entity string) string {
	return fmt.Sprintf("catalog:%s:version", entity)
}
