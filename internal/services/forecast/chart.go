package forecast

import "github.com/Nazarious-ucu/weather-dashboard/internal/models"

const (
	ChartTitle  = "24h Weather Forecast"
	chartHeight = 500

	// PrecipitationAxisMax leaves headroom above 100% for the glyphs.
	PrecipitationAxisMax = 110

	// TemperatureAxisPadding keeps the glyphs at the extremes inside the plot.
	TemperatureAxisPadding = 1.0
)

// Chart lays out temperature on the left axis and precipitation probability
// on the right axis over a shared time axis.
func Chart(window []models.HourlyRecord) models.ChartSpec {
	temperature := make([]models.ChartPoint, 0, len(window))
	precipitation := make([]models.ChartPoint, 0, len(window))
	for _, r := range window {
		temperature = append(temperature, models.ChartPoint{Time: r.Time, Value: r.Temperature})
		precipitation = append(precipitation, models.ChartPoint{Time: r.Time, Value: r.PrecipitationProbability})
	}

	return models.ChartSpec{
		Title:      ChartTitle,
		Height:     chartHeight,
		Template:   "plotly_dark",
		ShowLegend: false,
		XAxis:      models.Axis{ShowGrid: false},
		YAxis: models.Axis{
			Title: "Temperature (°C)",
			Range: temperatureRange(window),
		},
		YAxis2: models.Axis{
			Title: "Precipitation (%)",
			Range: &[2]float64{0, PrecipitationAxisMax},
		},
		Series: []models.ChartSeries{
			{
				Name:   "Temperature",
				Mode:   "lines+markers",
				Glyph:  "🌡️",
				Color:  "#FF4B4B",
				Width:  2,
				Size:   14,
				YAxis:  "y",
				Points: temperature,
			},
			{
				Name:   "Precipitation",
				Mode:   "markers",
				Glyph:  "🌧️",
				Size:   18,
				YAxis:  "y2",
				Points: precipitation,
			},
		},
	}
}

// temperatureRange spans the known temperatures plus padding on both sides,
// or is nil to let the renderer pick when there are none.
func temperatureRange(window []models.HourlyRecord) *[2]float64 {
	var r *[2]float64
	for _, rec := range window {
		if rec.Temperature == nil {
			continue
		}
		v := *rec.Temperature
		if r == nil {
			r = &[2]float64{v, v}
			continue
		}
		if v < r[0] {
			r[0] = v
		}
		if v > r[1] {
			r[1] = v
		}
	}
	if r != nil {
		r[0] -= TemperatureAxisPadding
		r[1] += TemperatureAxisPadding
	}
	return r
}
