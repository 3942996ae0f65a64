package notification

import (
	"fmt"
	"time"
)

// Clock supplies the engine's notion of "now". Production code uses
// time.Now; tests substitute a fixed instant so "today" and "upcoming" are
// reproducible.
type Clock func() time.Time

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timeLayoutShort = "15:04"
)

// ParseDate parses a calendar date in YYYY-MM-DD form, in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseTimeOfDay parses a time of day in HH:MM or HH:MM:SS form and returns
// it normalized to HH:MM:SS, so stored values always share one layout.
func ParseTimeOfDay(s string) (string, error) {
	for _, layout := range []string{timeLayout, timeLayoutShort} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(timeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid time %q, expected HH:MM or HH:MM:SS", s)
}

// dateOnly strips the time portion of t, keeping its location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// timeSeconds converts a stored time-of-day value into seconds since
// midnight. The boolean is false when the value is absent or unparseable.
func timeSeconds(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	for _, layout := range []string{timeLayout, timeLayoutShort} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// addHours shifts a time of day forward, wrapping at midnight. The wrap
// never carries into the date: the snooze day shift is applied separately
// and is the only thing that moves the due date.
func addHours(t time.Time, hours int) string {
	h := (t.Hour() + hours) % 24
	return fmt.Sprintf("%02d:%02d:%02d", h, t.Minute(), t.Second())
}
