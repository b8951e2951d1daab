package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-dashboard/internal/services/cache"
)

// unreachableRedis points at a port nothing listens on.
func unreachableRedis(t *testing.T) *cache.RedisClient[string] {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return cache.NewRedisClient[string](client, zerolog.Nop(), time.Minute)
}

func TestRedisClient_ConnectionErrorIsNotMiss(t *testing.T) {
	c := unreachableRedis(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "forecast")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMiss)

	assert.Error(t, c.Set(ctx, "forecast", "snapshot"))
	assert.Error(t, c.Delete(ctx, "forecast"))
}
