// Package policy collects the scheduling and parsing heuristics as named,
// overridable values. The numbers here are deliberate product decisions
// (academic-calendar conventions, spaced-practice defaults), not derived
// quantities; swapping a policy must never require touching an algorithm.
package policy

import (
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

// ReviewTier describes one deadline-proximity review injection: when a
// qualifying deadline is exactly DaysBefore days away, a review session with
// the given label prefix and duration is attempted.
type ReviewTier struct {
	DaysBefore  int
	LabelPrefix string
	DurationMin int
}

// Policies bundles every heuristic constant used by the parser and the
// synthesizer.
type Policies struct {
	// AcademicPivotMonth resolves dates with no explicit year: months at or
	// past the pivot fall in the reference year, earlier months roll into
	// the next one. August fits the US academic calendar.
	AcademicPivotMonth time.Month

	// StudyHoursByType is the fixed study-effort estimate per deadline type.
	StudyHoursByType map[domain.DeadlineType]int

	// FallbackDifficulty/FallbackCredits are assigned to the placeholder
	// course emitted when parsing finds nothing.
	FallbackDifficulty int
	FallbackCredits    int

	// MaxParseBytes caps untrusted input before pattern matching.
	MaxParseBytes int

	// SessionTargets is the weekday study-session count per intensity.
	// Weekends run one session fewer, floored at zero.
	SessionTargets map[domain.Intensity]int

	// Fixed daily anchors, minutes of day unless noted.
	BreakfastOffsetMin int // after wake time
	LunchMin           int
	DinnerMin          int
	BreakTimes         []int // used when breaks are enabled
	DeadlineMarkerMin  int   // where due markers land

	// StudySlots are the candidate session anchors walked in order.
	StudySlots []int

	// ReviewSlots are late-evening anchors tried for deadline reviews.
	ReviewSlots []int

	// SessionTags rotate across study sessions.
	SessionTags []string

	// ReviewTiers, closest first. Closer deadlines get longer sessions and
	// more urgent labels.
	ReviewTiers []ReviewTier

	// Evening wind-down block.
	FreeBlockWeekdayMin      int // start, minutes of day
	FreeBlockWeekdayDuration int
	FreeBlockWeekendMin      int
	FreeBlockWeekendDuration int
}

// Default returns the stock policy set.
func Default() Policies {
	return Policies{
		AcademicPivotMonth: time.August,
		StudyHoursByType: map[domain.DeadlineType]int{
			domain.DeadlineExam:         8,
			domain.DeadlinePractical:    5,
			domain.DeadlineQuiz:         3,
			domain.DeadlineProject:      3,
			domain.DeadlinePresentation: 3,
			domain.DeadlineAssignment:   3,
		},
		FallbackDifficulty: 3,
		FallbackCredits:    3,
		MaxParseBytes:      1 << 20,
		SessionTargets: map[domain.Intensity]int{
			domain.IntensityRelaxed:   2,
			domain.IntensityBalanced:  3,
			domain.IntensityIntensive: 5,
		},
		BreakfastOffsetMin: 60,
		LunchMin:           12*60 + 30,
		DinnerMin:          18 * 60,
		BreakTimes:         []int{11 * 60, 15 * 60, 20 * 60},
		DeadlineMarkerMin:  23*60 + 59,
		StudySlots: []int{
			9*60 + 30, 10*60 + 30, 11*60 + 30,
			14 * 60, 15*60 + 30, 16*60 + 30,
			19*60 + 30, 20*60 + 30,
		},
		ReviewSlots: []int{21 * 60, 21*60 + 45, 22*60 + 30},
		SessionTags: []string{"review", "practice", "reading", "problems", "notes"},
		ReviewTiers: []ReviewTier{
			{DaysBefore: 1, LabelPrefix: "Final review", DurationMin: 90},
			{DaysBefore: 3, LabelPrefix: "Intensive review", DurationMin: 60},
			{DaysBefore: 7, LabelPrefix: "Early review", DurationMin: 45},
		},
		FreeBlockWeekdayMin:      21 * 60,
		FreeBlockWeekdayDuration: 60,
		FreeBlockWeekendMin:      20*60 + 30,
		FreeBlockWeekendDuration: 120,
	}
}

// StudyHours returns the effort estimate for a deadline type, defaulting to
// the assignment figure for unknown types.
func (p Policies) StudyHours(t domain.DeadlineType) int {
	if h, ok := p.StudyHoursByType[t]; ok {
		return h
	}
	return p.StudyHoursByType[domain.DeadlineAssignment]
}

// SessionTarget returns the study-session count for an intensity on a
// weekday or weekend day.
func (p Policies) SessionTarget(intensity domain.Intensity, weekend bool) int {
	n, ok := p.SessionTargets[intensity]
	if !ok {
		n = p.SessionTargets[domain.IntensityBalanced]
	}
	if weekend {
		n--
	}
	if n < 0 {
		n = 0
	}
	return n
}

// ResolveYear applies the academic-calendar year heuristic: a month at or
// past the pivot belongs to the reference date's year, anything earlier to
// the following year.
func (p Policies) ResolveYear(month time.Month, ref time.Time) int {
	if month >= p.AcademicPivotMonth {
		return ref.Year()
	}
	return ref.Year() + 1
}
