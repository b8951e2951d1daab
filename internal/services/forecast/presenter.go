// Package forecast turns a weather snapshot into what the dashboard shows:
// current conditions, the next-24h hourly window, a dual-axis chart and the
// raw hourly table.
package forecast

import (
	"fmt"
	"time"

	// Europe/London must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// WindowSpan is the length of the forecast window starting at now.
const WindowSpan = 24 * time.Hour

type windowObserver interface {
	ObserveWindow(hours int)
}

type Presenter struct {
	logger   zerolog.Logger
	place    models.Location
	tz       *time.Location
	title    string
	now      func() time.Time
	observer windowObserver
}

func NewPresenter(logger zerolog.Logger, place models.Location, title string, observer windowObserver) (*Presenter, error) {
	tz, err := time.LoadLocation(place.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", place.Timezone, err)
	}
	return &Presenter{
		logger:   logger,
		place:    place,
		tz:       tz,
		title:    title,
		now:      time.Now,
		observer: observer,
	}, nil
}

// WithClock replaces the wall clock. Intended for tests.
func (p *Presenter) WithClock(now func() time.Time) *Presenter {
	p.now = now
	return p
}

// Present derives a dashboard from s. now is read once per call.
func (p *Presenter) Present(s models.WeatherSnapshot) models.Dashboard {
	now := p.now()

	records, skipped := Records(s.Hourly, p.tz)
	if skipped > 0 {
		p.logger.Warn().
			Int("skipped", skipped).
			Msg("dropped hourly rows with unparseable timestamps")
	}

	current := Conditions(s.Current)
	if current.WeatherCodeDefaulted {
		p.logger.Warn().Msg("response has no current weather_code; showing code 0")
	}

	window := Window(records, now, WindowSpan)
	if p.observer != nil {
		p.observer.ObserveWindow(len(window))
	}

	p.logger.Debug().
		Time("now", now).
		Int("hourly_rows", len(records)).
		Int("window_rows", len(window)).
		Msg("presented forecast")

	return models.Dashboard{
		Title:       p.title,
		Location:    p.place,
		GeneratedAt: now,
		FetchedAt:   s.FetchedAt,
		Current:     current,
		HasHourly:   s.Hourly.Len() > 0,
		Window:      window,
		Chart:       Chart(window),
		Raw:         records,
	}
}
