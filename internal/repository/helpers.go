package repository

import (
	"strings"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

const dateLayout = "2006-01-02"

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// encodeWeekdays stores a weekday set as a comma-joined name list.
func encodeWeekdays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

func decodeWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, name := range strings.Split(s, ",") {
		if wd, ok := domain.ParseWeekday(name); ok {
			days = append(days, wd)
		}
	}
	return days
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
