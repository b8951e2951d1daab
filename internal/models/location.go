package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Location is a fixed point the dashboard reports on.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// ForecastRequest is the full parameter set of one Open-Meteo call.
type ForecastRequest struct {
	Location      Location
	CurrentFields []string
	HourlyFields  []string
}

// Key identifies the request in a cache. Equal requests produce equal keys.
func (r ForecastRequest) Key() string {
	return fmt.Sprintf("forecast:%s:%s:%s:%s:%s",
		formatCoordinate(r.Location.Latitude),
		formatCoordinate(r.Location.Longitude),
		strings.Join(r.CurrentFields, ","),
		strings.Join(r.HourlyFields, ","),
		r.Location.Timezone,
	)
}

// Query encodes the request as Open-Meteo query parameters.
func (r ForecastRequest) Query() url.Values {
	values := url.Values{}
	values.Set("latitude", formatCoordinate(r.Location.Latitude))
	values.Set("longitude", formatCoordinate(r.Location.Longitude))
	values.Set("current", strings.Join(r.CurrentFields, ","))
	values.Set("hourly", strings.Join(r.HourlyFields, ","))
	values.Set("timezone", r.Location.Timezone)
	return values
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
