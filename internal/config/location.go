package config

import "github.com/Nazarious-ucu/weather-dashboard/internal/models"

var Bristol = models.Location{
	Name:      "Bristol",
	Latitude:  51.4545,
	Longitude: -2.5879,
	Timezone:  "Europe/London",
}

var (
	currentFields = []string{"temperature_2m", "wind_speed_10m", "weather_code"}
	hourlyFields  = []string{"temperature_2m", "relative_humidity_2m", "precipitation_probability"}
)

// DashboardTitle heads the page and the JSON model.
const DashboardTitle = "Bristol Weather Dashboard"
