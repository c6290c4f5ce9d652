package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"warotator/internal/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb), mr
}

func TestCache_SetGet(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)
	ctx := context.Background()

	g := &types.Group{
		ID:             uuid.New(),
		Slug:           "sales",
		Name:           "Sales",
		DefaultMessage: "Hi there",
		IsActive:       true,
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, c.Set(ctx, g, 30*time.Second))

	assert.True(t, mr.Exists("group:slug:sales"))
	assert.Equal(t, 30*time.Second, mr.TTL("group:slug:sales"))

	got, err := c.Get(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, "Hi there", got.DefaultMessage)
	assert.True(t, got.IsActive)
	assert.True(t, got.CreatedAt.Equal(g.CreatedAt))
}

func TestCache_MissReturnsRedisNil(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, redis.Nil), "expected redis.Nil, got %v", err)
}

func TestCache_DeleteAndExpiry(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)
	ctx := context.Background()

	g := &types.Group{ID: uuid.New(), Slug: "support"}
	require.NoError(t, c.Set(ctx, g, time.Minute))
	require.NoError(t, c.Delete(ctx, "support"))
	assert.False(t, mr.Exists("group:slug:support"))

	require.NoError(t, c.Set(ctx, g, time.Minute))
	mr.FastForward(2 * time.Minute)
	_, err := c.Get(ctx, "support")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestCache_CorruptValue(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("group:slug:broken", "{not json"))
	_, err := c.Get(context.Background(), "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))
}

func TestCache_ContextCanceled(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Set(ctx, &types.Group{Slug: "x"}, time.Second)
	assert.Error(t, err)
}
