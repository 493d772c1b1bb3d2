package snapshot

import (
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

// Validate checks a decoded document before conversion. All problems are
// returned, not just the first.
func Validate(doc *Document) []error {
	var errs []error

	if doc.Version != Version {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", doc.Version, Version))
	}

	codes := make(map[string]bool)
	for i, c := range doc.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if c.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
			continue
		}
		if codes[c.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate %q", prefix, c.Code))
		}
		codes[c.Code] = true
		if c.Difficulty < 1 || c.Difficulty > 5 {
			errs = append(errs, fmt.Errorf("%s.difficulty: %d out of range 1-5", prefix, c.Difficulty))
		}
		if c.Credits < 1 || c.Credits > 6 {
			errs = append(errs, fmt.Errorf("%s.credits: %d out of range 1-6", prefix, c.Credits))
		}
	}

	ids := make(map[string]bool)
	for i, d := range doc.Deadlines {
		prefix := fmt.Sprintf("deadlines[%d]", i)
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[d.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate %q", prefix, d.ID))
		}
		ids[d.ID] = true
		if _, err := time.Parse(dateLayout, d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, d.Date))
		}
		if d.Type != "" && !domain.ValidDeadlineTypes[d.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, d.Type))
		}
		if d.StudyHoursNeeded < 0 {
			errs = append(errs, fmt.Errorf("%s.study_hours_needed must not be negative", prefix))
		}
	}

	for i, o := range doc.Obligations {
		prefix := fmt.Sprintf("obligations[%d]", i)
		if o.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		}
		if o.Type != "" && !domain.ValidObligationTypes[o.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, o.Type))
		}
		if o.Recurring && len(o.DaysOfWeek) == 0 {
			errs = append(errs, fmt.Errorf("%s.days_of_week must not be empty for a recurring obligation", prefix))
		}
		if !o.Recurring && len(o.DaysOfWeek) > 0 {
			errs = append(errs, fmt.Errorf("%s.days_of_week must be empty for a one-off obligation", prefix))
		}
		for _, name := range o.DaysOfWeek {
			if _, ok := domain.ParseWeekday(name); !ok {
				errs = append(errs, fmt.Errorf("%s.days_of_week: unknown weekday %q", prefix, name))
			}
		}
	}

	if p := doc.Preferences; p != nil {
		if p.WakeHour < 0 || p.WakeHour > 23 {
			errs = append(errs, fmt.Errorf("preferences.wake_time: %d out of range 0-23", p.WakeHour))
		}
		if p.SleepHour < 0 || p.SleepHour > 23 {
			errs = append(errs, fmt.Errorf("preferences.sleep_time: %d out of range 0-23", p.SleepHour))
		}
		if p.FocusMinutes < 15 || p.FocusMinutes > 60 {
			errs = append(errs, fmt.Errorf("preferences.focus_minutes: %d out of range 15-60", p.FocusMinutes))
		}
		if p.Intensity != "" && !domain.ValidIntensities[p.Intensity] {
			errs = append(errs, fmt.Errorf("preferences.intensity: invalid value %q", p.Intensity))
		}
		if p.ProcrastinationBufferPct < 0 || p.ProcrastinationBufferPct > 100 {
			errs = append(errs, fmt.Errorf("preferences.procrastination_buffer_pct: %d out of range 0-100", p.ProcrastinationBufferPct))
		}
		if p.HorizonDays < 1 {
			errs = append(errs, fmt.Errorf("preferences.horizon_days must be at least 1"))
		}
	}

	return errs
}
