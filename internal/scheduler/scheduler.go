// Package scheduler synthesizes day-by-day timetables from courses,
// deadlines, obligations and preferences. Synthesize is a pure function of
// its input: fixed anchors land first, study and review sessions fill the
// slots that remain. A greedy deterministic slot-filler with no backtracking
// and no optimality claim.
package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/studyflow/studyflow/internal/clock"
	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/policy"
)

const dateLayout = "2006-01-02"

// Input carries everything one synthesis run needs. The synthesizer never
// mutates any of it.
type Input struct {
	Courses     []domain.Course
	Deadlines   []domain.Deadline
	Obligations []domain.Obligation
	Prefs       domain.Preferences

	// Start is the first day of the horizon (date part only).
	Start time.Time

	// HorizonDays overrides Prefs.HorizonDays when positive. The effective
	// horizon is clamped to at least one day.
	HorizonDays int

	// Seed drives the per-day course shuffle. Zero derives a seed from the
	// start date so repeated runs over the same horizon agree.
	Seed int64

	// Policies overrides the heuristic set; nil means policy.Default().
	Policies *policy.Policies
}

// Synthesize produces the date-keyed schedule for the horizon. Weekend days
// are omitted entirely when preferences exclude them. The caller owns the
// returned map; regenerating with different preferences yields an
// independent schedule, never a patch.
func Synthesize(in Input) map[string]domain.DaySchedule {
	pol := policy.Default()
	if in.Policies != nil {
		pol = *in.Policies
	}

	days := in.HorizonDays
	if days <= 0 {
		days = in.Prefs.HorizonDays
	}
	if days < 1 {
		days = 1
	}

	start := time.Date(in.Start.Year(), in.Start.Month(), in.Start.Day(), 0, 0, 0, 0, time.UTC)

	seed := in.Seed
	if seed == 0 {
		seed = start.Unix()
	}

	schedule := make(map[string]domain.DaySchedule, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		weekend := isWeekend(date)
		if weekend && !in.Prefs.IncludeWeekends {
			continue
		}

		rng := rand.New(rand.NewSource(seed + int64(i)*1_000_003))
		day := buildDay(date, weekend, in, pol, rng)
		schedule[date.Format(dateLayout)] = day
	}

	return schedule
}

func buildDay(date time.Time, weekend bool, in Input, pol policy.Policies, rng *rand.Rand) domain.DaySchedule {
	day := domain.DaySchedule{
		Date:    date.Format(dateLayout),
		Weekend: weekend,
	}
	occupied := make(map[int]bool)

	place := func(a domain.Activity) {
		day.Activities = append(day.Activities, a)
		occupied[a.Start] = true
	}

	// Routine and meal anchors.
	wake := in.Prefs.WakeHour * 60
	place(domain.Activity{Start: wake, Label: "Morning routine", Category: domain.ActivityRoutine, DurationMin: 30})
	place(domain.Activity{Start: wake + pol.BreakfastOffsetMin, Label: "Breakfast", Category: domain.ActivityMeal, DurationMin: 30})
	place(domain.Activity{Start: pol.LunchMin, Label: "Lunch", Category: domain.ActivityMeal, DurationMin: 45})
	place(domain.Activity{Start: pol.DinnerMin, Label: "Dinner", Category: domain.ActivityMeal, DurationMin: 45})

	if in.Prefs.IncludeBreaks {
		labels := []string{"Social media break", "Afternoon break", "Evening break"}
		for i, t := range pol.BreakTimes {
			label := "Short break"
			if i < len(labels) {
				label = labels[i]
			}
			place(domain.Activity{Start: t, Label: label, Category: domain.ActivityBreak, DurationMin: 15})
		}
	}

	// Obligations claim their exact window. Degenerate ranges (end at or
	// before start) are skipped rather than clamped: an obligation the user
	// entered backwards should not silently eat midnight-to-end time.
	for _, o := range in.Obligations {
		if !o.OccursOn(date) {
			continue
		}
		dur := o.DurationMin()
		if dur <= 0 {
			continue
		}
		place(domain.Activity{
			Start:       o.StartTime,
			Label:       o.Title,
			Category:    domain.ActivityObligation,
			DurationMin: dur,
		})
	}

	// Zero-duration due markers. Deadlines outside the horizon simply never
	// render; nothing is deleted.
	for _, d := range in.Deadlines {
		if d.Date.Format(dateLayout) != day.Date {
			continue
		}
		place(domain.Activity{
			Start:       pol.DeadlineMarkerMin,
			Label:       fmt.Sprintf("DUE: %s", d.Title),
			Category:    domain.ActivityDeadline,
			DurationMin: 0,
			CourseRef:   d.CourseCode,
			Priority:    d.Priority,
		})
	}

	// Study sessions and deadline reviews need at least one course.
	if len(in.Courses) > 0 {
		placeStudySessions(&day, occupied, date, weekend, in, pol, rng)
		placeDeadlineReviews(&day, occupied, date, in, pol)
	}

	// Evening wind-down, sized for the kind of day.
	free := domain.Activity{Start: pol.FreeBlockWeekdayMin, Label: "Free time", Category: domain.ActivityFree, DurationMin: pol.FreeBlockWeekdayDuration}
	if weekend {
		free = domain.Activity{Start: pol.FreeBlockWeekendMin, Label: "Free time", Category: domain.ActivityFree, DurationMin: pol.FreeBlockWeekendDuration}
	}
	day.Activities = append(day.Activities, free)

	sortDay(&day)
	return day
}

// placeStudySessions walks the candidate slots in order until the intensity
// target is met, rotating courses so every course appears before any
// repeats.
func placeStudySessions(day *domain.DaySchedule, occupied map[int]bool, date time.Time, weekend bool, in Input, pol policy.Policies, rng *rand.Rand) {
	target := pol.SessionTarget(in.Prefs.Intensity, weekend)
	if target == 0 {
		return
	}

	rotation := newCourseRotation(in.Courses, rng)
	placed := 0
	for _, slot := range pol.StudySlots {
		if placed >= target {
			break
		}
		if occupied[slot] {
			continue
		}

		course := rotation.next()
		tag := pol.SessionTags[placed%len(pol.SessionTags)]
		day.Activities = append(day.Activities, domain.Activity{
			Start:       slot,
			Label:       fmt.Sprintf("%s %s", course.Code, tag),
			Category:    domain.ActivityStudy,
			DurationMin: in.Prefs.FocusMinutes,
			CourseRef:   course.Code,
		})
		occupied[slot] = true
		placed++
	}
}

// placeDeadlineReviews injects at most one review per qualifying deadline
// when the deadline is exactly a review-tier distance away. Closer deadlines
// get longer sessions and more urgent labels.
func placeDeadlineReviews(day *domain.DaySchedule, occupied map[int]bool, date time.Time, in Input, pol policy.Policies) {
	for _, d := range in.Deadlines {
		if !d.NeedsReview() {
			continue
		}
		daysLeft := daysBetween(date, d.Date)

		var tier *policy.ReviewTier
		for i := range pol.ReviewTiers {
			if pol.ReviewTiers[i].DaysBefore == daysLeft {
				tier = &pol.ReviewTiers[i]
				break
			}
		}
		if tier == nil {
			continue
		}

		for _, slot := range pol.ReviewSlots {
			if occupied[slot] {
				continue
			}
			day.Activities = append(day.Activities, domain.Activity{
				Start:       slot,
				Label:       fmt.Sprintf("%s: %s", tier.LabelPrefix, d.Title),
				Category:    domain.ActivityReview,
				DurationMin: tier.DurationMin,
				CourseRef:   d.CourseCode,
				Priority:    d.Priority,
			})
			occupied[slot] = true
			break
		}
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// FormatSlot renders an activity start for display.
func FormatSlot(a domain.Activity) string {
	return clock.FormatMinutes(a.Start)
}
