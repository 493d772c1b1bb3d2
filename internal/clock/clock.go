// Package clock converts between 12-hour and 24-hour wall-clock notation and
// derives chronological sort keys for schedule entries. It deliberately has
// no notion of dates or zones: everything is minutes within one day.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes on the 24-hour clock.
const MinutesPerDay = 24 * 60

// To12Hour renders an hour/minute pair as a 12-hour clock string following
// the standard convention: 00:00 -> "12:00 AM", 12:00 -> "12:00 PM".
func To12Hour(hour, minute int) string {
	suffix := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		h = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// To24Hour parses a 12-hour clock string ("9:30 AM", "12:05 pm") back into
// an hour/minute pair. It is the exact inverse of To12Hour for every valid
// time of day.
func To24Hour(s string) (hour, minute int, err error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	var suffix string
	switch {
	case strings.HasSuffix(upper, "AM"):
		suffix = "AM"
	case strings.HasSuffix(upper, "PM"):
		suffix = "PM"
	default:
		return 0, 0, fmt.Errorf("parsing %q: missing AM/PM suffix", s)
	}

	clockPart := strings.TrimSpace(upper[:len(upper)-2])
	h, m, err := splitClock(clockPart)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("parsing %q: out of range", s)
	}

	if suffix == "AM" {
		if h == 12 {
			h = 0
		}
	} else if h != 12 {
		h += 12
	}
	return h, m, nil
}

// MinuteOfDay returns the minutes-since-midnight sort key for a clock string
// in either 12-hour ("9:30 PM") or 24-hour ("21:30") notation. The returned
// key imposes the same total order regardless of which notation the input
// uses.
func MinuteOfDay(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		h, m, err := To24Hour(s)
		if err != nil {
			return 0, err
		}
		return h*60 + m, nil
	}

	h, m, err := splitClock(upper)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parsing %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatMinutes renders a minutes-of-day value in 12-hour notation.
func FormatMinutes(minutes int) string {
	return To12Hour(minutes/60, minutes%60)
}

func splitClock(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour %q", parts[0])
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute %q", parts[1])
	}
	return h, m, nil
}
