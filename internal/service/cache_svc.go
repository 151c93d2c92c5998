package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UserCacheTTL  = 5 * time.Minute
	StatsCacheTTL = time.Minute
)

const globalStatsKey = "stats:global"

// CacheService provides a Redis cache-aside layer for user and global
// statistics lookups.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation degrades to a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetUser retrieves a cached user response. Returns nil if not cached.
func (c *CacheService) GetUser(ctx context.Context, userID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, userKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetUser stores a user response in cache.
func (c *CacheService) SetUser(ctx context.Context, userID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(userID), b, UserCacheTTL).Err()
}

// InvalidateUser removes a user from cache after a verdict or arbitration
// touched their counters.
func (c *CacheService) InvalidateUser(ctx context.Context, userID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, userKey(userID)).Err()
}

// GetGlobalStats retrieves the cached global stats response.
func (c *CacheService) GetGlobalStats(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, globalStatsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetGlobalStats stores the global stats response.
func (c *CacheService) SetGlobalStats(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, globalStatsKey, b, StatsCacheTTL).Err()
}

// InvalidateGlobalStats drops the global stats entry.
func (c *CacheService) InvalidateGlobalStats(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, globalStatsKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func userKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
