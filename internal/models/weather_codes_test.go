package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

func TestDescribeWeatherCode(t *testing.T) {
	known := map[int]string{
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Fog",
		48: "Depositing rime fog",
		51: "Drizzle: Light",
		53: "Drizzle: Moderate",
		55: "Drizzle: Dense intensity",
		61: "Rain: Slight",
		63: "Rain: Moderate",
		65: "Rain: Heavy intensity",
		71: "Snow fall: Slight",
		73: "Snow fall: Moderate",
		75: "Snow fall: Heavy intensity",
		77: "Snow grains",
		80: "Rain showers: Slight",
		81: "Rain showers: Moderate",
		82: "Rain showers: Violent",
		85: "Snow showers: Slight",
		86: "Snow showers: Heavy",
		95: "Thunderstorm: Slight or moderate",
		96: "Thunderstorm with slight hail",
		99: "Thunderstorm with heavy hail",
	}
	for code, want := range known {
		assert.Equal(t, want, models.DescribeWeatherCode(code), "code %d", code)
	}

	for code := -1; code <= 100; code++ {
		if _, ok := known[code]; ok {
			continue
		}
		assert.Equal(t, models.UnknownCondition, models.DescribeWeatherCode(code), "code %d", code)
	}
	assert.Equal(t, models.UnknownCondition, models.DescribeWeatherCode(1000))
}
