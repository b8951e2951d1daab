package weather_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

var bristol = models.ForecastRequest{
	Location: models.Location{
		Name:      "Bristol",
		Latitude:  51.4545,
		Longitude: -2.5879,
		Timezone:  "Europe/London",
	},
	CurrentFields: []string{"temperature_2m", "wind_speed_10m", "weather_code"},
	HourlyFields:  []string{"temperature_2m", "relative_humidity_2m", "precipitation_probability"},
}

type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) Fetch(ctx context.Context, req models.ForecastRequest) (models.WeatherSnapshot, error) {
	args := m.Called(ctx, req)
	data, ok := args.Get(0).(models.WeatherSnapshot)
	if !ok {
		return models.WeatherSnapshot{}, args.Error(1)
	}
	return data, args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}
