package models

import (
	"fmt"
	"time"
)

// WeatherSnapshot is one decoded Open-Meteo response. Optional scalars are
// pointers so that an absent or null field stays distinguishable from zero.
type WeatherSnapshot struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
	Current   Current   `json:"current"`
	Hourly    Hourly    `json:"hourly"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Current struct {
	Time        *string  `json:"time,omitempty"`
	Temperature *float64 `json:"temperature_2m,omitempty"`
	WindSpeed   *float64 `json:"wind_speed_10m,omitempty"`
	WeatherCode *int     `json:"weather_code,omitempty"`
}

// Hourly holds parallel sequences; index i of every slice refers to Time[i].
type Hourly struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
}

// Len is the number of hourly rows.
func (h Hourly) Len() int {
	return len(h.Time)
}

// Validate reports an error when the parallel sequences disagree in length.
// A sequence that was not sent at all is allowed.
func (h Hourly) Validate() error {
	n := len(h.Time)
	check := func(name string, l int) error {
		if l != 0 && l != n {
			return fmt.Errorf("hourly %s has %d values, time has %d", name, l, n)
		}
		return nil
	}
	if err := check("temperature_2m", len(h.Temperature)); err != nil {
		return err
	}
	if err := check("relative_humidity_2m", len(h.RelativeHumidity)); err != nil {
		return err
	}
	return check("precipitation_probability", len(h.PrecipitationProbability))
}
