package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryClient is a process-wide TTL cache. The zero state is empty, so every
// key starts out expired.
type MemoryClient[T any] struct {
	mu         sync.Mutex
	items      map[string]entry[T]
	expiration time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

func NewMemoryClient[T any](logger zerolog.Logger, expiration time.Duration) *MemoryClient[T] {
	return &MemoryClient[T]{
		items:      make(map[string]entry[T]),
		expiration: expiration,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *MemoryClient[T]) WithClock(now func() time.Time) *MemoryClient[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

func (c *MemoryClient[T]) Set(ctx context.Context, key string, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[T]{value: value, expiresAt: c.now().Add(c.expiration)}

	c.logger.Debug().
		Ctx(ctx).
		Str("key", key).
		Dur("expiration", c.expiration).
		Msg("writing to cache")
	return nil
}

//nolint:ireturn
func (c *MemoryClient[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return zero, ErrMiss
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		c.logger.Debug().
			Ctx(ctx).
			Str("key", key).
			Msg("cache entry expired")
		return zero, ErrMiss
	}
	return e.value, nil
}

func (c *MemoryClient[T]) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	c.logger.Debug().
		Ctx(ctx).
		Str("key", key).
		Msg("cache entry cleared")
	return nil
}

