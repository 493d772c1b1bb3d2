package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studyflow/studyflow/internal/domain"
)

func TestFormatDay(t *testing.T) {
	day := domain.DaySchedule{
		Date: "2024-09-09",
		Activities: []domain.Activity{
			{Start: 480, Label: "Morning routine", Category: domain.ActivityRoutine, DurationMin: 30},
			{Start: 570, Label: "Study: BIO1205 review", Category: domain.ActivityStudy, DurationMin: 25, CourseRef: "BIO1205"},
			{Start: 1439, Label: "DUE: Exam I", Category: domain.ActivityDeadline, Priority: domain.PriorityHigh},
		},
	}

	out := FormatDay(day)
	assert.Contains(t, out, "Monday, September 9 2024")
	assert.Contains(t, out, "Morning routine")
	assert.Contains(t, out, "9:30 AM")
	assert.Contains(t, out, "DUE: Exam I")
}

func TestFormatDay_Empty(t *testing.T) {
	out := FormatDay(domain.DaySchedule{Date: "2024-09-14", Weekend: true})
	assert.Contains(t, out, "(weekend)")
	assert.Contains(t, out, "nothing scheduled")
}

func TestFormatSchedule_SortsDates(t *testing.T) {
	schedule := map[string]domain.DaySchedule{
		"2024-09-10": {Date: "2024-09-10"},
		"2024-09-09": {Date: "2024-09-09"},
	}
	out := FormatSchedule(schedule)
	assert.Less(t, indexOf(out, "September 9"), indexOf(out, "September 10"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "—", durationLabel(0))
	assert.Equal(t, "45m", durationLabel(45))
	assert.Equal(t, "2h", durationLabel(120))
	assert.Equal(t, "1h30m", durationLabel(90))
}

func TestFormatDeadlines_RelativeDays(t *testing.T) {
	now := time.Date(2024, 9, 9, 10, 0, 0, 0, time.UTC)
	deadlines := []*domain.Deadline{
		{ID: "7f2c3a60-63f0-4a51-9f0e-2f9f6ad21d2b", Title: "Exam I",
			Date: time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC),
			Type: domain.DeadlineExam, CourseCode: "BIO1205", Priority: domain.PriorityHigh},
	}
	out := FormatDeadlines(deadlines, now)
	assert.Contains(t, out, "7f2c3a60")
	assert.Contains(t, out, "in 4 days")
}

func TestFormatCourses_EmptyHint(t *testing.T) {
	assert.Contains(t, FormatCourses(nil), "studyflow import")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGHEADER"}, [][]string{{"x", "y"}, {"longer", "z"}})
	assert.Contains(t, out, "LONGHEADER")
	assert.Contains(t, out, "longer")
}
