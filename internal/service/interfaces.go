package service

import (
	"context"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

type CourseService interface {
	Add(ctx context.Context, code, name string, difficulty, credits int) (*domain.Course, error)
	Get(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Remove(ctx context.Context, code string) error
}

type DeadlineService interface {
	Add(ctx context.Context, in AddDeadlineInput) (*domain.Deadline, error)
	List(ctx context.Context) ([]*domain.Deadline, error)
	// Upcoming returns deadlines dated within the next `days` days.
	Upcoming(ctx context.Context, from time.Time, days int) ([]*domain.Deadline, error)
	Remove(ctx context.Context, id string) error
}

// AddDeadlineInput carries user-supplied deadline fields. Date is
// YYYY-MM-DD; empty Priority and zero StudyHours fall back to
// type-derived defaults.
type AddDeadlineInput struct {
	Title      string
	Date       string
	Type       string
	CourseCode string
	Priority   string
	StudyHours int
}

type ObligationService interface {
	Add(ctx context.Context, in AddObligationInput) (*domain.Obligation, error)
	List(ctx context.Context) ([]*domain.Obligation, error)
	Remove(ctx context.Context, id string) error
}

// AddObligationInput carries user-supplied obligation fields. Days holds
// weekday names for recurring obligations; StartDate/EndDate (YYYY-MM-DD)
// bound one-offs. Times are clock strings in either 12h or 24h form.
type AddObligationInput struct {
	Title     string
	Type      string
	Days      []string
	StartTime string
	EndTime   string
	StartDate string
	EndDate   string
}

type PreferencesService interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, p domain.Preferences) error
	// Update applies the non-nil patch fields over the stored preferences.
	Update(ctx context.Context, patch PreferencesPatch) (domain.Preferences, error)
}

// PreferencesPatch holds optional preference overrides; nil fields keep
// their stored value.
type PreferencesPatch struct {
	WakeHour                 *int
	SleepHour                *int
	FocusMinutes             *int
	Intensity                string
	IncludeBreaks            *bool
	ProcrastinationBufferPct *int
	IncludeWeekends          *bool
	HorizonDays              *int
}

// ImportSummary reports what one text import produced.
type ImportSummary struct {
	Courses      []*domain.Course
	Deadlines    []*domain.Deadline
	SkippedDupes int
	Fallback     bool
}

type PlannerService interface {
	// ImportText parses raw syllabus text and persists the extracted
	// courses and deadlines. Duplicate deadlines (same title and date)
	// are skipped, courses are upserted.
	ImportText(ctx context.Context, raw, sourceName string) (*ImportSummary, error)

	// Generate synthesizes the schedule for the horizon starting at start.
	// horizonDays <= 0 uses the stored preference.
	Generate(ctx context.Context, start time.Time, horizonDays int) (map[string]domain.DaySchedule, error)

	// Variants renders the schedule under each intensity level.
	Variants(ctx context.Context, start time.Time, horizonDays int) (map[domain.Intensity]map[string]domain.DaySchedule, error)

	// InvalidateCache drops memoized schedules after state mutations.
	InvalidateCache()
}

type SnapshotService interface {
	Save(ctx context.Context, path string) error
	// Load restores state from a snapshot file. replace wipes existing
	// rows first; otherwise snapshot content merges over what is stored.
	Load(ctx context.Context, path string, replace bool) (*ImportSummary, error)
}
