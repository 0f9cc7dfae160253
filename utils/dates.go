// utils/dates.go
package utils

import (
	"time"

	"eventhub-backend/apperr"
)

// NormalizeDate collapses any instant to the UTC midnight of its
// calendar day. This is the identity key for booking collisions, so
// two requests on the same UTC day collide regardless of time-of-day.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayRange returns the half-open [start, end) window covering the
// calendar day of t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := NormalizeDate(t)
	return start, start.Add(24 * time.Hour)
}

// ParseDate accepts a plain calendar date or a full RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperr.New(apperr.Validation, "date is required")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.Newf(apperr.Validation, "invalid date %q, expected YYYY-MM-DD or RFC3339", value)
}
