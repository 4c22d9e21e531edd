package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache keeps resolved thumbnail URLs in Redis so the catalog can serve
// artwork without hitting the store APIs again. A nil Cache (or one built
// without a client) degrades to a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis at addr and verifies the connection.
func NewCache(addr, password string, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: rdb, ttl: ttl}, nil
}

func cacheKey(gameID uuid.UUID) string {
	return fmt.Sprintf("thumbnail:game:%s", gameID)
}

// Get returns the cached thumbnail URL for the game, or "" on a miss.
func (c *Cache) Get(ctx context.Context, gameID uuid.UUID) (string, error) {
	if c == nil || c.client == nil {
		return "", nil
	}
	url, err := c.client.Get(ctx, cacheKey(gameID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("thumbnail cache get: %w", err)
	}
	return url, nil
}

// Put stores the thumbnail URL with the cache TTL.
func (c *Cache) Put(ctx context.Context, gameID uuid.UUID, url string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, cacheKey(gameID), url, c.ttl).Err(); err != nil {
		return fmt.Errorf("thumbnail cache put: %w", err)
	}
	return nil
}

// Evict drops the cached URL, e.g. after enrichment replaced the artwork.
func (c *Cache) Evict(ctx context.Context, gameID uuid.UUID) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, cacheKey(gameID)).Err(); err != nil {
		return fmt.Errorf("thumbnail cache evict: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
