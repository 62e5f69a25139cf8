package event

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format used by dateEvent and by the date filter.
const DateLayout = "2006-01-02"

// ParseDate parses a dateEvent value as a calendar day at midnight in loc.
// Returns time.Time{} (zero value) if parsing fails. A nil loc means UTC.
func ParseDate(dateText string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}

	t, err := time.ParseInLocation(DateLayout, dateText, loc)
	if err == nil {
		return t
	}

	// Some season feeds carry a full timestamp in dateEvent
	t, err = time.ParseInLocation("2006-01-02T15:04:05", dateText, loc)
	if err == nil {
		return StartOfDay(t)
	}

	return time.Time{}
}

// StartOfDay zeroes the time of day, keeping t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsUpcoming reports whether the event falls on now's calendar day or later.
// Events with an unparsable date are never upcoming.
func (e Event) IsUpcoming(now time.Time) bool {
	parsed := ParseDate(e.Date, now.Location())
	if parsed.IsZero() {
		return false
	}
	return !parsed.Before(StartOfDay(now))
}
