package domain

import (
	"strings"
	"time"
)

// ParseWeekday resolves a weekday name ("Monday", "mon") case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := wd.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return wd, true
		}
	}
	return 0, false
}
