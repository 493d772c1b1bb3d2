package domain

// Preferences captures how a user wants their days shaped. A Preferences
// value is immutable for the duration of one synthesis run; changing any
// field means generating a fresh schedule, never patching an old one.
type Preferences struct {
	WakeHour                 int // 0-23
	SleepHour                int // 0-23, may wrap past midnight
	FocusMinutes             int // 15-60
	Intensity                Intensity
	IncludeBreaks            bool
	ProcrastinationBufferPct int // 0-100
	IncludeWeekends          bool
	HorizonDays              int
}

// DefaultPreferences returns the out-of-the-box preference set.
func DefaultPreferences() Preferences {
	return Preferences{
		WakeHour:                 8,
		SleepHour:                23,
		FocusMinutes:             25,
		Intensity:                IntensityBalanced,
		IncludeBreaks:            true,
		ProcrastinationBufferPct: 40,
		IncludeWeekends:          true,
		HorizonDays:              30,
	}
}
