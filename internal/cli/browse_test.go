package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/teatest"
)

func browseFixture() map[string]domain.DaySchedule {
	return map[string]domain.DaySchedule{
		"2024-09-09": {Date: "2024-09-09", Activities: []domain.Activity{
			{Start: 480, Label: "Morning routine", Category: domain.ActivityRoutine, DurationMin: 30},
		}},
		"2024-09-10": {Date: "2024-09-10", Activities: []domain.Activity{
			{Start: 570, Label: "Study: BIO1205 reading", Category: domain.ActivityStudy, DurationMin: 25},
		}},
	}
}

func TestBrowse_PagesThroughDays(t *testing.T) {
	d := teatest.New(t, newBrowseModel(browseFixture()), teatest.WithSize(80, 24))
	d.DrainInit()

	require.Contains(t, d.View(), "day 1/2")
	assert.Contains(t, d.View(), "September 9")

	d.PressKey('l')
	assert.Contains(t, d.View(), "day 2/2")
	assert.Contains(t, d.View(), "September 10")

	// paging past the last day is a no-op
	d.PressKey('l')
	assert.Contains(t, d.View(), "day 2/2")

	d.PressKey('h')
	assert.Contains(t, d.View(), "day 1/2")
}

func TestBrowse_QuitKey(t *testing.T) {
	d := teatest.New(t, newBrowseModel(browseFixture()), teatest.WithSize(80, 24))
	d.DrainInit()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBrowse_EmptySchedule(t *testing.T) {
	d := teatest.New(t, newBrowseModel(nil), teatest.WithSize(80, 24))
	d.DrainInit()

	assert.Contains(t, d.View(), "no days in horizon")
}
