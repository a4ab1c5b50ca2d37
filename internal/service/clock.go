package service

import (
	"time"

	"github.com/shopspring/decimal"

	"calorietracker/internal/model"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// today returns the server-local calendar day of now.
func today(now time.Time) string {
	return now.Format(model.DateLayout)
}

// parseDay validates a YYYY-MM-DD string and returns it as local noon,
// which keeps day arithmetic clear of DST transitions.
func parseDay(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(model.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(12 * time.Hour), true
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
