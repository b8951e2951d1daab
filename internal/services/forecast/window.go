package forecast

import (
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseTimestamp reads an Open-Meteo local timestamp in tz.
func ParseTimestamp(s string, tz *time.Location) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		t, perr := time.ParseInLocation(layout, s, tz)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}

// Records turns the parallel hourly sequences into rows, in source order.
// Rows whose timestamp cannot be parsed are dropped and counted.
func Records(h models.Hourly, tz *time.Location) ([]models.HourlyRecord, int) {
	records := make([]models.HourlyRecord, 0, h.Len())
	skipped := 0
	for i, label := range h.Time {
		t, err := ParseTimestamp(label, tz)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, models.HourlyRecord{
			Time:                     t,
			Label:                    label,
			Temperature:              at(h.Temperature, i),
			RelativeHumidity:         at(h.RelativeHumidity, i),
			PrecipitationProbability: at(h.PrecipitationProbability, i),
		})
	}
	return records, skipped
}

func at(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

// Window keeps the records with now <= t < now+span. Order is preserved and
// the result is never nil.
func Window(records []models.HourlyRecord, now time.Time, span time.Duration) []models.HourlyRecord {
	end := now.Add(span)
	out := make([]models.HourlyRecord, 0, len(records))
	for _, r := range records {
		if !r.Time.Before(now) && r.Time.Before(end) {
			out = append(out, r)
		}
	}
	return out
}
