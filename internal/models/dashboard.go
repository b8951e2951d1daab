package models

import "time"

// CurrentConditions is the summary row at the top of the dashboard.
type CurrentConditions struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"wind_speed"`
	WeatherCode int      `json:"weather_code"`
	// WeatherCodeDefaulted is set when the response carried no weather code
	// and WeatherCode fell back to 0.
	WeatherCodeDefaulted bool   `json:"weather_code_defaulted"`
	Condition            string `json:"condition"`
	TemperatureText      string `json:"temperature_text"`
	WindSpeedText        string `json:"wind_speed_text"`
}

// HourlyRecord is one row of the hourly table.
type HourlyRecord struct {
	Time                     time.Time `json:"time"`
	Label                    string    `json:"label"`
	Temperature              *float64  `json:"temperature_2m"`
	RelativeHumidity         *float64  `json:"relative_humidity_2m"`
	PrecipitationProbability *float64  `json:"precipitation_probability"`
}

type Axis struct {
	Title    string      `json:"title,omitempty"`
	ShowGrid bool        `json:"showgrid"`
	Range    *[2]float64 `json:"range,omitempty"`
}

type ChartPoint struct {
	Time  time.Time `json:"x"`
	Value *float64  `json:"y"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Mode   string       `json:"mode"`
	Glyph  string       `json:"glyph,omitempty"`
	Color  string       `json:"color,omitempty"`
	Width  int          `json:"width,omitempty"`
	Size   int          `json:"size,omitempty"`
	YAxis  string       `json:"yaxis"`
	Points []ChartPoint `json:"points"`
}

// ChartSpec describes a two-series chart sharing the time axis with
// independent y-axes ("y" on the left, "y2" on the right).
type ChartSpec struct {
	Title      string        `json:"title"`
	Height     int           `json:"height"`
	Template   string        `json:"template"`
	ShowLegend bool          `json:"showlegend"`
	XAxis      Axis          `json:"xaxis"`
	YAxis      Axis          `json:"yaxis"`
	YAxis2     Axis          `json:"yaxis2"`
	Series     []ChartSeries `json:"series"`
}

// Dashboard is everything one render needs.
type Dashboard struct {
	Title       string            `json:"title"`
	Location    Location          `json:"location"`
	GeneratedAt time.Time         `json:"generated_at"`
	FetchedAt   time.Time         `json:"fetched_at"`
	Current     CurrentConditions `json:"current"`
	HasHourly   bool              `json:"has_hourly"`
	Window      []HourlyRecord    `json:"window"`
	Chart       ChartSpec         `json:"chart"`
	Raw         []HourlyRecord    `json:"raw"`
}
