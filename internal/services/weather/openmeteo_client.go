package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

const maxErrorBody = 1 << 12

type apiResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Current   models.Current `json:"current"`
	Hourly    models.Hourly  `json:"hourly"`
}

type apiError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// ClientOpenMeteo fetches forecast data from the Open-Meteo API.
type ClientOpenMeteo struct {
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClientOpenMeteo constructs a new Open-Meteo client.
func NewClientOpenMeteo(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *ClientOpenMeteo {
	return &ClientOpenMeteo{apiURL: apiURL, client: httpClient, logger: logger}
}

// Fetch issues one GET for req. Every error it returns is a *models.FetchFailure.
func (s *ClientOpenMeteo) Fetch(ctx context.Context, req models.ForecastRequest) (models.WeatherSnapshot, error) {
	start := time.Now()
	url := fmt.Sprintf("%s?%s", s.apiURL, req.Query().Encode())

	s.logger.Debug().
		Ctx(ctx).
		Str("location", req.Location.Name).
		Str("url", url).
		Msg("starting Open-Meteo request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("url", url).
			Msg("failed to create HTTP request")
		return models.WeatherSnapshot{}, models.NewFetchFailure(models.FailureTransport, err, "invalid request")
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("url", url).
			Msg("error sending HTTP request to Open-Meteo")
		return models.WeatherSnapshot{}, models.NewFetchFailure(models.FailureTransport, err, "request to Open-Meteo failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode/100 != 2 {
		s.logger.Error().
			Str("status", resp.Status).
			Msg("Open-Meteo API returned non-2xx status")
		return models.WeatherSnapshot{}, statusFailure(resp)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode Open-Meteo response")
		return models.WeatherSnapshot{}, models.NewFetchFailure(models.FailureDecode, err, "invalid JSON from Open-Meteo")
	}

	if err := raw.Hourly.Validate(); err != nil {
		s.logger.Error().
			Err(err).
			Msg("Open-Meteo hourly block is inconsistent")
		return models.WeatherSnapshot{}, models.NewFetchFailure(models.FailureMalformed, err, "malformed Open-Meteo response")
	}

	snapshot := models.WeatherSnapshot{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Timezone:  raw.Timezone,
		Current:   raw.Current,
		Hourly:    raw.Hourly,
	}

	s.logger.Info().
		Str("location", req.Location.Name).
		Int("hourly_rows", snapshot.Hourly.Len()).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched forecast")

	return snapshot, nil
}

func statusFailure(resp *http.Response) *models.FetchFailure {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
		return models.NewFetchFailure(models.FailureStatus, nil,
			"Open-Meteo error: status %s: %s", resp.Status, apiErr.Reason)
	}
	return models.NewFetchFailure(models.FailureStatus, nil, "Open-Meteo error: status %s", resp.Status)
}
