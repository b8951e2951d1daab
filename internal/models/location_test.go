package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

var bristolRequest = models.ForecastRequest{
	Location: models.Location{
		Name:      "Bristol",
		Latitude:  51.4545,
		Longitude: -2.5879,
		Timezone:  "Europe/London",
	},
	CurrentFields: []string{"temperature_2m", "wind_speed_10m", "weather_code"},
	HourlyFields:  []string{"temperature_2m", "relative_humidity_2m", "precipitation_probability"},
}

func TestForecastRequest_Query(t *testing.T) {
	q := bristolRequest.Query()

	assert.Equal(t, "51.4545", q.Get("latitude"))
	assert.Equal(t, "-2.5879", q.Get("longitude"))
	assert.Equal(t, "temperature_2m,wind_speed_10m,weather_code", q.Get("current"))
	assert.Equal(t, "temperature_2m,relative_humidity_2m,precipitation_probability", q.Get("hourly"))
	assert.Equal(t, "Europe/London", q.Get("timezone"))
}

func TestForecastRequest_Key(t *testing.T) {
	same := bristolRequest
	assert.Equal(t, bristolRequest.Key(), same.Key())

	other := bristolRequest
	other.Location.Latitude = 51.5
	assert.NotEqual(t, bristolRequest.Key(), other.Key())
}

func TestHourly_Validate(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	t.Run("Equal", func(t *testing.T) {
		h := models.Hourly{
			Time:                     []string{"2024-05-01T00:00", "2024-05-01T01:00"},
			Temperature:              []*float64{v(10), v(11)},
			RelativeHumidity:         []*float64{v(80), nil},
			PrecipitationProbability: []*float64{v(5), v(10)},
		}
		require.NoError(t, h.Validate())
		assert.Equal(t, 2, h.Len())
	})

	t.Run("MissingSequence", func(t *testing.T) {
		h := models.Hourly{
			Time:        []string{"2024-05-01T00:00"},
			Temperature: []*float64{v(10)},
		}
		assert.NoError(t, h.Validate())
	})

	t.Run("Unequal", func(t *testing.T) {
		h := models.Hourly{
			Time:                     []string{"2024-05-01T00:00", "2024-05-01T01:00"},
			PrecipitationProbability: []*float64{v(5)},
		}
		assert.Error(t, h.Validate())
	})
}

func TestFetchFailure(t *testing.T) {
	cause := errors.New("connection refused")
	f := models.NewFetchFailure(models.FailureTransport, cause, "request to %s failed", "open-meteo")

	assert.Equal(t, "request to open-meteo failed: connection refused", f.Error())
	assert.ErrorIs(t, f, cause)

	var target *models.FetchFailure
	require.ErrorAs(t, error(f), &target)
	assert.Equal(t, models.FailureTransport, target.Reason)
}
