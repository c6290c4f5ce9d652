package cache

import (
	"context"
	"encoding/json"
	"time"

	"warotator/internal/types"

	"github.com/redis/go-redis/v9"
)

const groupKeyPrefix = "group:slug:"

// Cache keeps groups by slug so the redirect path can skip the database
// lookup. Numbers are never cached: rotation always reads current state.
type Cache struct {
	rdb *redis.Client
}

func ConnectRedis(addr, password string, db int) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Cache{rdb: rdb}, nil
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get returns redis.Nil when the slug is not cached.
func (c *Cache) Get(ctx context.Context, slug string) (*types.Group, error) {
	raw, err := c.rdb.Get(ctx, groupKeyPrefix+slug).Bytes()
	if err != nil {
		return nil, err
	}
	var g types.Group
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Cache) Set(ctx context.Context, group *types.Group, expiration time.Duration) error {
	raw, err := json.Marshal(group)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, groupKeyPrefix+group.Slug, raw, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, groupKeyPrefix+slug).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
