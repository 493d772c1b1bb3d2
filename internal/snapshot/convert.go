package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/clock"
	"github.com/studyflow/studyflow/internal/domain"
)

const dateLayout = "2006-01-02"

// State is the in-memory session content a snapshot captures.
type State struct {
	Courses     []domain.Course
	Deadlines   []domain.Deadline
	Obligations []domain.Obligation
	Preferences *domain.Preferences
	Schedule    map[string]domain.DaySchedule // optional
}

// Encode renders the state as an indented snapshot document.
func Encode(s State, now time.Time) ([]byte, error) {
	doc := Document{
		Version:     Version,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}

	for _, c := range s.Courses {
		doc.Courses = append(doc.Courses, Course{
			Code: c.Code, Name: c.Name, Difficulty: c.Difficulty, Credits: c.Credits,
		})
	}
	for _, d := range s.Deadlines {
		doc.Deadlines = append(doc.Deadlines, Deadline{
			ID:               d.ID,
			Title:            d.Title,
			Date:             d.Date.Format(dateLayout),
			Type:             string(d.Type),
			Course:           d.CourseCode,
			Priority:         string(d.Priority),
			StudyHoursNeeded: d.StudyHoursNeeded,
		})
	}
	for _, o := range s.Obligations {
		days := make([]string, 0, len(o.DaysOfWeek))
		for _, wd := range o.DaysOfWeek {
			days = append(days, wd.String())
		}
		doc.Obligations = append(doc.Obligations, Obligation{
			ID:         o.ID,
			Title:      o.Title,
			Type:       string(o.Type),
			Recurring:  o.Recurring,
			DaysOfWeek: days,
			StartTime:  clock.FormatMinutes(o.StartTime),
			EndTime:    clock.FormatMinutes(o.EndTime),
			StartDate:  o.StartDate.Format(dateLayout),
			EndDate:    o.EndDate.Format(dateLayout),
		})
	}
	if s.Preferences != nil {
		doc.Preferences = &Preferences{
			WakeHour:                 s.Preferences.WakeHour,
			SleepHour:                s.Preferences.SleepHour,
			FocusMinutes:             s.Preferences.FocusMinutes,
			Intensity:                string(s.Preferences.Intensity),
			IncludeBreaks:            s.Preferences.IncludeBreaks,
			ProcrastinationBufferPct: s.Preferences.ProcrastinationBufferPct,
			IncludeWeekends:          s.Preferences.IncludeWeekends,
			HorizonDays:              s.Preferences.HorizonDays,
		}
	}
	if len(s.Schedule) > 0 {
		doc.SelectedSchedule = make(map[string][]Activity, len(s.Schedule))
		for date, day := range s.Schedule {
			acts := make([]Activity, 0, len(day.Activities))
			for _, a := range day.Activities {
				acts = append(acts, Activity{
					Time:        clock.FormatMinutes(a.Start),
					Label:       a.Label,
					Category:    string(a.Category),
					DurationMin: a.DurationMin,
					Course:      a.CourseRef,
					Priority:    string(a.Priority),
				})
			}
			doc.SelectedSchedule[date] = acts
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses and validates a snapshot document, converting it back into
// session state. Validation errors are collected, not first-error-only.
func Decode(data []byte) (State, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("parsing snapshot: %w", err)
	}
	if errs := Validate(&doc); len(errs) > 0 {
		return State{}, fmt.Errorf("invalid snapshot: %d problems, first: %w", len(errs), errs[0])
	}

	var s State
	for _, c := range doc.Courses {
		s.Courses = append(s.Courses, domain.Course{
			Code: c.Code, Name: c.Name, Difficulty: c.Difficulty, Credits: c.Credits,
		})
	}
	for _, d := range doc.Deadlines {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			return State{}, fmt.Errorf("parsing deadline date %q: %w", d.Date, err)
		}
		s.Deadlines = append(s.Deadlines, domain.Deadline{
			ID:               d.ID,
			Title:            d.Title,
			Date:             date,
			Type:             domain.DeadlineType(d.Type),
			CourseCode:       d.Course,
			Priority:         domain.Priority(d.Priority),
			StudyHoursNeeded: d.StudyHoursNeeded,
		})
	}
	for _, o := range doc.Obligations {
		ob, err := decodeObligation(o)
		if err != nil {
			return State{}, err
		}
		s.Obligations = append(s.Obligations, ob)
	}
	if doc.Preferences != nil {
		s.Preferences = &domain.Preferences{
			WakeHour:                 doc.Preferences.WakeHour,
			SleepHour:                doc.Preferences.SleepHour,
			FocusMinutes:             doc.Preferences.FocusMinutes,
			Intensity:                domain.Intensity(doc.Preferences.Intensity),
			IncludeBreaks:            doc.Preferences.IncludeBreaks,
			ProcrastinationBufferPct: doc.Preferences.ProcrastinationBufferPct,
			IncludeWeekends:          doc.Preferences.IncludeWeekends,
			HorizonDays:              doc.Preferences.HorizonDays,
		}
	}

	return s, nil
}

func decodeObligation(o Obligation) (domain.Obligation, error) {
	start, err := clock.MinuteOfDay(o.StartTime)
	if err != nil {
		return domain.Obligation{}, fmt.Errorf("obligation %q start_time: %w", o.Title, err)
	}
	end, err := clock.MinuteOfDay(o.EndTime)
	if err != nil {
		return domain.Obligation{}, fmt.Errorf("obligation %q end_time: %w", o.Title, err)
	}
	startDate, err := time.Parse(dateLayout, o.StartDate)
	if err != nil {
		return domain.Obligation{}, fmt.Errorf("obligation %q start_date: %w", o.Title, err)
	}
	endDate, err := time.Parse(dateLayout, o.EndDate)
	if err != nil {
		return domain.Obligation{}, fmt.Errorf("obligation %q end_date: %w", o.Title, err)
	}

	var days []time.Weekday
	for _, name := range o.DaysOfWeek {
		wd, ok := domain.ParseWeekday(name)
		if !ok {
			return domain.Obligation{}, fmt.Errorf("obligation %q: unknown weekday %q", o.Title, name)
		}
		days = append(days, wd)
	}

	return domain.Obligation{
		ID:         o.ID,
		Title:      o.Title,
		Type:       domain.ObligationType(o.Type),
		Recurring:  o.Recurring,
		DaysOfWeek: days,
		StartTime:  start,
		EndTime:    end,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}
