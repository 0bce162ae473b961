package utils

import (
	"fmt"
	"time"
)

// dateFormats are the timestamp layouts dashboard clients are known to send.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string, trying the layouts used by the dashboard
// in order.
func ParseDate(dateStr string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// HourLabel formats an hour of the day (0-23) as a chart label like "9AM"
// or "12PM".
func HourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d%s", h, suffix)
}
