package forecast

import (
	"strconv"
	"strings"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// Placeholder is shown for a metric the response did not carry.
const Placeholder = "N/A"

// Conditions extracts the current-conditions summary. An absent weather code
// falls back to 0 ("Clear sky") and is flagged via WeatherCodeDefaulted.
func Conditions(c models.Current) models.CurrentConditions {
	code := 0
	defaulted := true
	if c.WeatherCode != nil {
		code = *c.WeatherCode
		defaulted = false
	}

	return models.CurrentConditions{
		Temperature:          c.Temperature,
		WindSpeed:            c.WindSpeed,
		WeatherCode:          code,
		WeatherCodeDefaulted: defaulted,
		Condition:            models.DescribeWeatherCode(code),
		TemperatureText:      withUnit(c.Temperature, "°C"),
		WindSpeedText:        withUnit(c.WindSpeed, "km/h"),
	}
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return Placeholder
	}
	return FormatNumber(*v) + " " + unit
}

// FormatNumber renders v with the shortest exact decimal, keeping one
// fractional digit for whole numbers (14 → "14.0").
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
