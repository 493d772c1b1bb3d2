package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday("monday")
	require.True(t, ok)
	assert.Equal(t, time.Monday, wd)

	wd, ok = ParseWeekday("Thu")
	require.True(t, ok)
	assert.Equal(t, time.Thursday, wd)

	_, ok = ParseWeekday("someday")
	assert.False(t, ok)
}

func TestObligationOccursOn(t *testing.T) {
	recurring := Obligation{
		Recurring:  true,
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
	}
	monday := time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, recurring.OccursOn(monday))
	assert.False(t, recurring.OccursOn(monday.AddDate(0, 0, 1)))
	assert.True(t, recurring.OccursOn(monday.AddDate(0, 0, 2)))

	oneOff := Obligation{
		StartDate: time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, oneOff.OccursOn(monday))
	assert.True(t, oneOff.OccursOn(monday.AddDate(0, 0, 1)))
	assert.True(t, oneOff.OccursOn(monday.AddDate(0, 0, 3)))
	assert.False(t, oneOff.OccursOn(monday.AddDate(0, 0, 4)))
}

func TestObligationDurationDefendsAgainstBackwardsRange(t *testing.T) {
	o := Obligation{StartTime: 17 * 60, EndTime: 9 * 60}
	assert.Zero(t, o.DurationMin())

	o = Obligation{StartTime: 9 * 60, EndTime: 10 * 60}
	assert.Equal(t, 60, o.DurationMin())
}

func TestActivityCategoryFixed(t *testing.T) {
	fixed := []ActivityCategory{ActivityRoutine, ActivityMeal, ActivityBreak, ActivityObligation, ActivityDeadline}
	for _, c := range fixed {
		assert.True(t, c.Fixed(), string(c))
	}
	for _, c := range []ActivityCategory{ActivityStudy, ActivityReview, ActivityFree} {
		assert.False(t, c.Fixed(), string(c))
	}
}
