package forecast_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
)

func london(t *testing.T) *time.Location {
	t.Helper()
	tz, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	return tz
}

// hourlySeries builds n hourly rows starting at start, in tz local time.
func hourlySeries(start time.Time, n int) models.Hourly {
	h := models.Hourly{}
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		temp := float64(10 + i%5)
		hum := float64(70 + i%10)
		precip := float64(i * 2 % 100)
		h.Time = append(h.Time, ts.Format("2006-01-02T15:04"))
		h.Temperature = append(h.Temperature, &temp)
		h.RelativeHumidity = append(h.RelativeHumidity, &hum)
		h.PrecipitationProbability = append(h.PrecipitationProbability, &precip)
	}
	return h
}

func TestParseTimestamp(t *testing.T) {
	tz := london(t)

	got, err := forecast.ParseTimestamp("2024-07-01T13:00", tz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC), got.UTC(), "BST is UTC+1")

	got, err = forecast.ParseTimestamp("2024-01-15T13:00", tz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC), got.UTC(), "GMT is UTC+0")

	_, err = forecast.ParseTimestamp("yesterday", tz)
	assert.Error(t, err)
}

func TestRecords(t *testing.T) {
	tz := london(t)
	v := func(f float64) *float64 { return &f }

	h := models.Hourly{
		Time:                     []string{"2024-05-01T00:00", "garbage", "2024-05-01T02:00"},
		Temperature:              []*float64{v(9), v(10), v(11)},
		RelativeHumidity:         []*float64{v(90), v(91), nil},
		PrecipitationProbability: []*float64{v(0), v(5), v(10)},
	}

	records, skipped := forecast.Records(h, tz)
	require.Len(t, records, 2)
	assert.Equal(t, 1, skipped)

	assert.Equal(t, "2024-05-01T00:00", records[0].Label)
	assert.InDelta(t, 9, *records[0].Temperature, 0)
	assert.Equal(t, "2024-05-01T02:00", records[1].Label)
	assert.Nil(t, records[1].RelativeHumidity)
	assert.InDelta(t, 10, *records[1].PrecipitationProbability, 0)
}

func TestRecords_MissingSequence(t *testing.T) {
	h := models.Hourly{Time: []string{"2024-05-01T00:00"}}

	records, skipped := forecast.Records(h, london(t))
	require.Len(t, records, 1)
	assert.Zero(t, skipped)
	assert.Nil(t, records[0].Temperature)
	assert.Nil(t, records[0].PrecipitationProbability)
}

func TestWindow_48Hours(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, tz)
	records, _ := forecast.Records(hourlySeries(start, 48), tz)
	require.Len(t, records, 48)

	now := start.Add(6 * time.Hour)
	window := forecast.Window(records, now, forecast.WindowSpan)

	require.Len(t, window, 24)
	assert.Equal(t, records[6:30], window)
	for i := 1; i < len(window); i++ {
		assert.Equal(t, time.Hour, window[i].Time.Sub(window[i-1].Time))
	}
	assert.False(t, window[0].Time.Before(now))
	assert.True(t, window[len(window)-1].Time.Before(now.Add(forecast.WindowSpan)))
}

func TestWindow_NowBetweenHours(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, tz)
	records, _ := forecast.Records(hourlySeries(start, 48), tz)

	now := start.Add(6*time.Hour + 30*time.Minute)
	window := forecast.Window(records, now, forecast.WindowSpan)

	require.Len(t, window, 24)
	assert.Equal(t, "2024-05-01T07:00", window[0].Label)
	assert.Equal(t, "2024-05-02T06:00", window[23].Label)
}

func TestWindow_Example(t *testing.T) {
	tz := london(t)
	T := time.Date(2024, 5, 1, 9, 0, 0, 0, tz)
	h := models.Hourly{
		Time: []string{
			T.Format("2006-01-02T15:04"),
			T.Add(time.Hour).Format("2006-01-02T15:04"),
			T.Add(25 * time.Hour).Format("2006-01-02T15:04"),
		},
	}
	records, _ := forecast.Records(h, tz)

	window := forecast.Window(records, T, forecast.WindowSpan)

	require.Len(t, window, 2)
	assert.True(t, window[0].Time.Equal(T))
	assert.True(t, window[1].Time.Equal(T.Add(time.Hour)))
}

func TestWindow_StaleData(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 3, 0, 0, 0, 0, tz)
	records, _ := forecast.Records(hourlySeries(start, 24), tz)

	now := start.Add(-25 * time.Hour)
	window := forecast.Window(records, now, forecast.WindowSpan)

	assert.NotNil(t, window)
	assert.Empty(t, window)
}

func TestWindow_PastData(t *testing.T) {
	tz := london(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, tz)
	records, _ := forecast.Records(hourlySeries(start, 24), tz)

	window := forecast.Window(records, start.Add(48*time.Hour), forecast.WindowSpan)
	assert.Empty(t, window)
}

func TestWindow_Empty(t *testing.T) {
	window := forecast.Window(nil, time.Now(), forecast.WindowSpan)
	assert.NotNil(t, window)
	assert.Empty(t, window)
}
