package weather

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

// State reports the breaker state, e.g. for the health endpoint.
func (b *BreakerClient) State() string {
	return b.cb.State().String()
}

func (b *BreakerClient) Fetch(ctx context.Context, req models.ForecastRequest) (models.WeatherSnapshot, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.WeatherSnapshot{},
				models.NewFetchFailure(models.FailureBreaker, err, "%s unavailable", b.name)
		}
		return models.WeatherSnapshot{}, err
	}
	res, ok := result.(models.WeatherSnapshot)
	if !ok {
		return models.WeatherSnapshot{},
			models.NewFetchFailure(models.FailureMalformed, nil, "%s returned unexpected result", b.name)
	}
	return res, nil
}
