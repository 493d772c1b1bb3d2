// Package snapshot defines the flat JSON document that carries a whole
// session: courses, deadlines, obligations, preferences and optionally the
// last generated schedule. It is the only durable interchange format;
// schedules are regenerable, so only the entity lists must round-trip
// losslessly.
package snapshot

// Version is the current snapshot document version.
const Version = 1

// Document is the on-disk snapshot shape.
type Document struct {
	Version     int          `json:"version"`
	GeneratedAt string       `json:"generated_at"` // RFC 3339
	Courses     []Course     `json:"courses"`
	Deadlines   []Deadline   `json:"deadlines"`
	Obligations []Obligation `json:"obligations"`
	Preferences *Preferences `json:"preferences,omitempty"`

	// SelectedSchedule is an optional rendition of the last generated
	// schedule, keyed by YYYY-MM-DD. Carried opportunistically; consumers
	// should regenerate rather than trust it.
	SelectedSchedule map[string][]Activity `json:"selected_schedule,omitempty"`
}

type Course struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Credits    int    `json:"credits"`
}

type Deadline struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"` // YYYY-MM-DD
	Type             string `json:"type"`
	Course           string `json:"course"`
	Priority         string `json:"priority"`
	StudyHoursNeeded int    `json:"study_hours_needed"`
}

type Obligation struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Recurring  bool     `json:"recurring"`
	DaysOfWeek []string `json:"days_of_week,omitempty"` // weekday names
	StartTime  string   `json:"start_time"`             // 12-hour clock
	EndTime    string   `json:"end_time"`
	StartDate  string   `json:"start_date"` // YYYY-MM-DD
	EndDate    string   `json:"end_date"`
}

type Preferences struct {
	WakeHour                 int    `json:"wake_time"`
	SleepHour                int    `json:"sleep_time"`
	FocusMinutes             int    `json:"focus_minutes"`
	Intensity                string `json:"intensity"`
	IncludeBreaks            bool   `json:"include_breaks"`
	ProcrastinationBufferPct int    `json:"procrastination_buffer_pct"`
	IncludeWeekends          bool   `json:"include_weekends"`
	HorizonDays              int    `json:"horizon_days"`
}

type Activity struct {
	Time        string `json:"time"` // 12-hour clock
	Label       string `json:"label"`
	Category    string `json:"category"`
	DurationMin int    `json:"duration_minutes"`
	Course      string `json:"course,omitempty"`
	Priority    string `json:"priority,omitempty"`
}
