package decorators

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

const defaultFetchTimeout = 10 * time.Second

type weatherFetcherService interface {
	Fetch(ctx context.Context) (models.WeatherSnapshot, error)
	Key() string
	Location() models.Location
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
	Delete(ctx context.Context, key string) error
}

// CachedService memoizes the inner fetch for the cache's lifetime.
// Failed fetches are never stored.
type CachedService struct {
	inner        weatherFetcherService
	cache        cacheClient[models.WeatherSnapshot]
	group        singleflight.Group
	logger       zerolog.Logger
	fetchTimeout time.Duration

	// generation changes on every Invalidate. A fetch only stores its result
	// if no Invalidate happened while it was in flight.
	mu         sync.Mutex
	generation uint64
}

func NewCachedService(
	inner weatherFetcherService,
	cache cacheClient[models.WeatherSnapshot],
	logger zerolog.Logger,
) *CachedService {
	return &CachedService{
		inner:        inner,
		cache:        cache,
		logger:       logger,
		fetchTimeout: defaultFetchTimeout,
	}
}

// WithFetchTimeout bounds a shared upstream fetch independently of the
// request that started it.
func (s *CachedService) WithFetchTimeout(d time.Duration) *CachedService {
	s.fetchTimeout = d
	return s
}

func (s *CachedService) Location() models.Location {
	return s.inner.Location()
}

func (s *CachedService) Fetch(ctx context.Context) (models.WeatherSnapshot, error) {
	key := s.inner.Key()

	snapshot, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("key", key).
			Msg("cache hit")
		return snapshot, nil
	}
	s.logger.Info().
		Ctx(ctx).
		Str("key", key).
		Err(err).
		Msg("cache miss")

	// Concurrent misses share one upstream request.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.fetchAndStore(ctx, key)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		s.logger.Warn().
			Ctx(ctx).
			Str("key", key).
			Err(ctx.Err()).
			Msg("gave up waiting for forecast fetch")
		return models.WeatherSnapshot{},
			models.NewFetchFailure(models.FailureTransport, ctx.Err(), "forecast fetch abandoned")
	}

	if res.Err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(res.Err).
			Msg("inner service failed")
		return models.WeatherSnapshot{}, res.Err
	}
	if res.Shared {
		s.logger.Debug().
			Ctx(ctx).
			Str("key", key).
			Msg("joined in-flight fetch")
	}
	fresh, ok := res.Val.(models.WeatherSnapshot)
	if !ok {
		return models.WeatherSnapshot{},
			models.NewFetchFailure(models.FailureMalformed, nil, "unexpected cached fetch result")
	}
	return fresh, nil
}

// fetchAndStore runs detached from the caller's cancellation: other requests
// may be waiting on the same flight.
func (s *CachedService) fetchAndStore(ctx context.Context, key string) (models.WeatherSnapshot, error) {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
	defer cancel()

	fresh, err := s.inner.Fetch(fctx)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Info().
			Ctx(ctx).
			Str("key", key).
			Msg("cache invalidated during fetch, result not stored")
		return fresh, nil
	}
	if serr := s.cache.Set(fctx, key, fresh); serr != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(serr).
			Msg("cache set failed")
	}
	return fresh, nil
}

// Invalidate clears the cached snapshot so the next Fetch goes upstream.
// A fetch already in flight can no longer populate the cache.
func (s *CachedService) Invalidate(ctx context.Context) error {
	key := s.inner.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.group.Forget(key)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(err).
			Msg("cache invalidation failed")
		return err
	}
	s.logger.Info().
		Ctx(ctx).
		Str("key", key).
		Msg("cache invalidated")
	return nil
}
