package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyflow/studyflow/internal/clock"
	"github.com/studyflow/studyflow/internal/domain"
)

// FormatCourses renders the course table.
func FormatCourses(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("no courses yet (try: studyflow import syllabus.txt)") + "\n"
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			StyleBlue.Render(c.Code),
			c.Name,
			difficultyDots(c.Difficulty),
			fmt.Sprintf("%d", c.Credits),
		})
	}
	return RenderTable([]string{"CODE", "NAME", "DIFFICULTY", "CREDITS"}, rows)
}

func difficultyDots(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	filled := strings.Repeat("●", n)
	empty := strings.Repeat("○", 5-n)
	style := StyleGreen
	if n >= 4 {
		style = StyleRed
	} else if n == 3 {
		style = StyleYellow
	}
	return style.Render(filled) + Dim(empty)
}

// FormatDeadlines renders the deadline table, annotating how far off each
// one is from now.
func FormatDeadlines(deadlines []*domain.Deadline, now time.Time) string {
	if len(deadlines) == 0 {
		return Dim("no deadlines tracked") + "\n"
	}

	rows := make([][]string, 0, len(deadlines))
	for _, d := range deadlines {
		rows = append(rows, []string{
			Dim(shortID(d.ID)),
			d.Title,
			d.Date.Format("2006-01-02"),
			relativeDays(d.Date, now),
			string(d.Type),
			StyleBlue.Render(d.CourseCode),
			PriorityBadge(d.Priority),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "DATE", "WHEN", "TYPE", "COURSE", "PRIORITY"}, rows)
}

func relativeDays(date, now time.Time) string {
	days := int(date.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	switch {
	case days < 0:
		return StyleDim.Render("past")
	case days == 0:
		return StyleRed.Render("today")
	case days == 1:
		return StyleRed.Render("tomorrow")
	case days <= 7:
		return StyleYellow.Render(fmt.Sprintf("in %d days", days))
	default:
		return StyleGreen.Render(fmt.Sprintf("in %d days", days))
	}
}

// FormatObligations renders the obligation table.
func FormatObligations(obligations []*domain.Obligation) string {
	if len(obligations) == 0 {
		return Dim("no obligations registered") + "\n"
	}

	rows := make([][]string, 0, len(obligations))
	for _, o := range obligations {
		rows = append(rows, []string{
			Dim(shortID(o.ID)),
			o.Title,
			string(o.Type),
			obligationWhen(o),
			fmt.Sprintf("%s – %s", clock.FormatMinutes(o.StartTime), clock.FormatMinutes(o.EndTime)),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "TYPE", "WHEN", "TIME"}, rows)
}

func obligationWhen(o *domain.Obligation) string {
	if o.Recurring {
		names := make([]string, 0, len(o.DaysOfWeek))
		for _, wd := range o.DaysOfWeek {
			names = append(names, wd.String()[:3])
		}
		return strings.Join(names, ",")
	}
	if o.EndDate.Equal(o.StartDate) {
		return o.StartDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%s → %s", o.StartDate.Format("2006-01-02"), o.EndDate.Format("2006-01-02"))
}

// shortID trims a UUID down to its first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
