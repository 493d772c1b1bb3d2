package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/studyflow/studyflow/internal/clock"
	"github.com/studyflow/studyflow/internal/domain"
)

// FormatDay renders one day's timetable.
func FormatDay(day domain.DaySchedule) string {
	var b strings.Builder

	title := day.Date
	if t, err := time.Parse("2006-01-02", day.Date); err == nil {
		title = t.Format("Monday, January 2 2006")
	}
	if day.Weekend {
		title += " (weekend)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(day.Activities) == 0 {
		b.WriteString(Dim("  nothing scheduled"))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range day.Activities {
		b.WriteString(formatActivity(a))
		b.WriteString("\n")
	}
	return b.String()
}

func formatActivity(a domain.Activity) string {
	style := CategoryStyle(a.Category)

	when := fmt.Sprintf("%8s", clock.FormatMinutes(a.Start))
	dur := Dim(fmt.Sprintf("%4s", durationLabel(a.DurationMin)))

	label := style.Render(a.Label)
	if a.CourseRef != "" && a.CourseRef != domain.GeneralCourseCode && !strings.Contains(a.Label, a.CourseRef) {
		label += " " + Dim("["+a.CourseRef+"]")
	}
	if a.Category == domain.ActivityDeadline {
		label = style.Render("⚑ ") + label
	}
	return fmt.Sprintf("  %s  %s  %s", StyleBold.Render(when), dur, label)
}

func durationLabel(minutes int) string {
	switch {
	case minutes <= 0:
		return "—"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
	}
}

// FormatSchedule renders the whole horizon in date order.
func FormatSchedule(schedule map[string]domain.DaySchedule) string {
	dates := make([]string, 0, len(schedule))
	for d := range schedule {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var b strings.Builder
	for i, d := range dates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDay(schedule[d]))
	}
	if len(dates) == 0 {
		b.WriteString(Dim("no days in horizon"))
		b.WriteString("\n")
	}
	return b.String()
}

// ScheduleSummary renders a one-line digest of a generated schedule.
func ScheduleSummary(schedule map[string]domain.DaySchedule) string {
	days := len(schedule)
	study, review := 0, 0
	for _, day := range schedule {
		study += day.CountCategory(domain.ActivityStudy)
		review += day.CountCategory(domain.ActivityReview)
	}
	return fmt.Sprintf("%d days, %s study sessions, %s reviews",
		days,
		StyleGreen.Render(fmt.Sprintf("%d", study)),
		StyleYellow.Render(fmt.Sprintf("%d", review)))
}
