package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studyflow/studyflow/internal/domain"
)

func TestResolveYear_AcademicPivot(t *testing.T) {
	p := Default()
	ref := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2024, p.ResolveYear(time.September, ref))
	assert.Equal(t, 2024, p.ResolveYear(time.August, ref))
	assert.Equal(t, 2024, p.ResolveYear(time.December, ref))
	assert.Equal(t, 2025, p.ResolveYear(time.January, ref))
	assert.Equal(t, 2025, p.ResolveYear(time.July, ref))
}

func TestSessionTarget_WeekendDecrement(t *testing.T) {
	p := Default()

	for _, intensity := range []domain.Intensity{
		domain.IntensityRelaxed, domain.IntensityBalanced, domain.IntensityIntensive,
	} {
		weekday := p.SessionTarget(intensity, false)
		weekend := p.SessionTarget(intensity, true)
		assert.Equal(t, weekday-1, weekend, "intensity %s", intensity)
		assert.GreaterOrEqual(t, weekend, 0)
	}

	// Unknown intensity falls back to balanced.
	assert.Equal(t, p.SessionTargets[domain.IntensityBalanced], p.SessionTarget("mystery", false))
}

func TestStudyHours_UnknownTypeDefaultsToAssignment(t *testing.T) {
	p := Default()
	assert.Equal(t, p.StudyHoursByType[domain.DeadlineAssignment], p.StudyHours("seminar"))
	assert.Greater(t, p.StudyHours(domain.DeadlineExam), p.StudyHours(domain.DeadlinePractical))
	assert.Greater(t, p.StudyHours(domain.DeadlinePractical), p.StudyHours(domain.DeadlineAssignment))
}
