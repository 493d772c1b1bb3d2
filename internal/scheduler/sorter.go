package scheduler

import (
	"sort"

	"github.com/studyflow/studyflow/internal/domain"
)

// sortDay orders a day's activities by minute of day ascending. At equal
// times fixed activities sort before flexible ones; beyond that the stable
// sort preserves insertion order.
func sortDay(day *domain.DaySchedule) {
	sort.SliceStable(day.Activities, func(i, j int) bool {
		a, b := day.Activities[i], day.Activities[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Fixed() && !b.Fixed()
	})
}
