package forecast_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
)

var bristol = models.Location{
	Name:      "Bristol",
	Latitude:  51.4545,
	Longitude: -2.5879,
	Timezone:  "Europe/London",
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) ObserveWindow(hours int) {
	m.Called(hours)
}

func TestNewPresenter_BadTimezone(t *testing.T) {
	_, err := forecast.NewPresenter(zerolog.Nop(), models.Location{Timezone: "Mars/Olympus"}, "x", nil)
	assert.Error(t, err)
}

func TestPresenter_Present(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, tz)
	now := start.Add(12 * time.Hour)
	code := 3
	temp := 13.5

	snapshot := models.WeatherSnapshot{
		Timezone:  "Europe/London",
		Current:   models.Current{Temperature: &temp, WeatherCode: &code},
		Hourly:    hourlySeries(start, 48),
		FetchedAt: now.Add(-time.Minute).UTC(),
	}

	obs := &mockObserver{}
	obs.On("ObserveWindow", 24).Return().Once()

	t.Cleanup(func() {
		obs.AssertExpectations(t)
	})

	p, err := forecast.NewPresenter(zerolog.Nop(), bristol, "Bristol Weather Dashboard", obs)
	require.NoError(t, err)
	p.WithClock(func() time.Time { return now })

	d := p.Present(snapshot)

	assert.Equal(t, "Bristol Weather Dashboard", d.Title)
	assert.Equal(t, bristol, d.Location)
	assert.True(t, d.GeneratedAt.Equal(now))
	assert.True(t, d.FetchedAt.Equal(snapshot.FetchedAt))
	assert.Equal(t, "13.5 °C", d.Current.TemperatureText)
	assert.Equal(t, forecast.Placeholder, d.Current.WindSpeedText)
	assert.Equal(t, "Overcast", d.Current.Condition)
	assert.True(t, d.HasHourly)
	assert.Len(t, d.Raw, 48)
	require.Len(t, d.Window, 24)
	assert.Equal(t, "2024-05-01T12:00", d.Window[0].Label)
	assert.Len(t, d.Chart.Series[0].Points, 24)
}

func TestPresenter_NowReadPerCall(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, tz)
	snapshot := models.WeatherSnapshot{Hourly: hourlySeries(start, 48)}

	now := start
	p, err := forecast.NewPresenter(zerolog.Nop(), bristol, "t", nil)
	require.NoError(t, err)
	p.WithClock(func() time.Time { return now })

	first := p.Present(snapshot)
	now = start.Add(30 * time.Hour)
	second := p.Present(snapshot)

	assert.Len(t, first.Window, 24)
	assert.Len(t, second.Window, 18)
	assert.Equal(t, "2024-05-02T06:00", second.Window[0].Label)
}

func TestPresenter_NoHourly(t *testing.T) {
	p, err := forecast.NewPresenter(zerolog.Nop(), bristol, "t", nil)
	require.NoError(t, err)

	d := p.Present(models.WeatherSnapshot{})

	assert.False(t, d.HasHourly)
	assert.Empty(t, d.Window)
	assert.Empty(t, d.Raw)
	assert.True(t, d.Current.WeatherCodeDefaulted)
	assert.Equal(t, "Clear sky", d.Current.Condition)
}
