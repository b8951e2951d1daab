package weather

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type client interface {
	Fetch(ctx context.Context, req models.ForecastRequest) (models.WeatherSnapshot, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type fetchObserver interface {
	ObserveFetch(result string)
}

// ServiceProvider fetches the dashboard's one fixed forecast request.
type ServiceProvider struct {
	logger   zerolog.Logger
	client   client
	request  models.ForecastRequest
	observer fetchObserver
	now      func() time.Time
}

func NewService(logger zerolog.Logger, req models.ForecastRequest, cl client, observer fetchObserver) *ServiceProvider {
	return &ServiceProvider{
		logger:   logger,
		client:   cl,
		request:  req,
		observer: observer,
		now:      time.Now,
	}
}

// Key is the cache key of the fixed request.
func (s *ServiceProvider) Key() string {
	return s.request.Key()
}

// Location is the place the fixed request targets.
func (s *ServiceProvider) Location() models.Location {
	return s.request.Location
}

// Fetch performs exactly one upstream call. Errors are always *models.FetchFailure.
func (s *ServiceProvider) Fetch(ctx context.Context) (models.WeatherSnapshot, error) {
	s.logger.Info().
		Ctx(ctx).
		Str("location", s.request.Location.Name).
		Msg("calling Fetch")

	data, err := s.client.Fetch(ctx, s.request)
	if err != nil {
		var failure *models.FetchFailure
		if !errors.As(err, &failure) {
			failure = models.NewFetchFailure(models.FailureTransport, err, "weather fetch failed")
		}
		s.logger.Error().
			Ctx(ctx).
			Str("reason", string(failure.Reason)).
			Err(err).
			Msg("fetch failed")
		s.observe(string(failure.Reason))
		return models.WeatherSnapshot{}, failure
	}

	data.FetchedAt = s.now().UTC()
	s.logger.Info().
		Ctx(ctx).
		Time("fetched_at", data.FetchedAt).
		Msg("fetch succeeded")
	s.observe("success")
	return data, nil
}

func (s *ServiceProvider) observe(result string) {
	if s.observer != nil {
		s.observer.ObserveFetch(result)
	}
}
