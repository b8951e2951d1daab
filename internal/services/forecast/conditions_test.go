package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
)

func TestConditions(t *testing.T) {
	temp, wind, code := 14.2, 11.0, 63

	tests := []struct {
		name      string
		in        models.Current
		temp      string
		wind      string
		condition string
		code      int
		defaulted bool
	}{
		{
			name:      "AllPresent",
			in:        models.Current{Temperature: &temp, WindSpeed: &wind, WeatherCode: &code},
			temp:      "14.2 °C",
			wind:      "11.0 km/h",
			condition: "Rain: Moderate",
			code:      63,
		},
		{
			name:      "AllMissing",
			in:        models.Current{},
			temp:      forecast.Placeholder,
			wind:      forecast.Placeholder,
			condition: "Clear sky",
			code:      0,
			defaulted: true,
		},
		{
			name:      "UnknownCode",
			in:        models.Current{WeatherCode: func() *int { c := 42; return &c }()},
			temp:      forecast.Placeholder,
			wind:      forecast.Placeholder,
			condition: models.UnknownCondition,
			code:      42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forecast.Conditions(tt.in)

			assert.Equal(t, tt.temp, got.TemperatureText)
			assert.Equal(t, tt.wind, got.WindSpeedText)
			assert.Equal(t, tt.condition, got.Condition)
			assert.Equal(t, tt.code, got.WeatherCode)
			assert.Equal(t, tt.defaulted, got.WeatherCodeDefaulted)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "14.0", forecast.FormatNumber(14))
	assert.Equal(t, "-2.5", forecast.FormatNumber(-2.5))
	assert.Equal(t, "0.1", forecast.FormatNumber(0.1))
}
