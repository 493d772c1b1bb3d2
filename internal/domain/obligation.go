package domain

import "time"

// Obligation is a fixed-time personal commitment, recurring on weekdays or
// pinned to a date range. Times are minutes of day; a non-recurring
// obligation's range collapses to a single date (EndDate == StartDate).
//
// EndTime <= StartTime is not validated upstream; the synthesizer skips such
// occurrences rather than emitting zero or negative durations.
type Obligation struct {
	ID         string
	Title      string
	Type       ObligationType
	Recurring  bool
	DaysOfWeek []time.Weekday // non-empty iff Recurring
	StartTime  int            // minutes of day
	EndTime    int            // minutes of day
	StartDate  time.Time
	EndDate    time.Time

	CreatedAt time.Time
}

// OccursOn reports whether the obligation claims time on the given date.
// Recurring obligations match by weekday membership, one-offs by date-range
// cover (inclusive on both ends).
func (o *Obligation) OccursOn(date time.Time) bool {
	if o.Recurring {
		for _, wd := range o.DaysOfWeek {
			if date.Weekday() == wd {
				return true
			}
		}
		return false
	}
	day := dateOnly(date)
	return !day.Before(dateOnly(o.StartDate)) && !day.After(dateOnly(o.EndDate))
}

// DurationMin returns EndTime-StartTime in minutes, or 0 for degenerate
// ranges.
func (o *Obligation) DurationMin() int {
	if o.EndTime <= o.StartTime {
		return 0
	}
	return o.EndTime - o.StartTime
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
