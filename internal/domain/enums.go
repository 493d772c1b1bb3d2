package domain

type DeadlineType string

const (
	DeadlineAssignment   DeadlineType = "assignment"
	DeadlineExam         DeadlineType = "exam"
	DeadlineQuiz         DeadlineType = "quiz"
	DeadlineProject      DeadlineType = "project"
	DeadlinePresentation DeadlineType = "presentation"
	DeadlinePractical    DeadlineType = "practical"
)

// ValidDeadlineTypes is the canonical set of accepted deadline type strings.
var ValidDeadlineTypes = map[string]bool{
	"assignment": true, "exam": true, "quiz": true,
	"project": true, "presentation": true, "practical": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Intensity string

const (
	IntensityRelaxed   Intensity = "relaxed"
	IntensityBalanced  Intensity = "balanced"
	IntensityIntensive Intensity = "intensive"
)

// ValidIntensities is the canonical set of accepted intensity strings.
var ValidIntensities = map[string]bool{
	"relaxed": true, "balanced": true, "intensive": true,
}

type ObligationType string

const (
	ObligationWork        ObligationType = "work"
	ObligationMeeting     ObligationType = "meeting"
	ObligationAppointment ObligationType = "appointment"
	ObligationExercise    ObligationType = "exercise"
	ObligationSocial      ObligationType = "social"
	ObligationClass       ObligationType = "class"
	ObligationOther       ObligationType = "other"
)

// ValidObligationTypes is the canonical set of accepted obligation type strings.
var ValidObligationTypes = map[string]bool{
	"work": true, "meeting": true, "appointment": true,
	"exercise": true, "social": true, "class": true, "other": true,
}

type ActivityCategory string

const (
	ActivityRoutine    ActivityCategory = "routine"
	ActivityMeal       ActivityCategory = "meal"
	ActivityBreak      ActivityCategory = "break"
	ActivityStudy      ActivityCategory = "study"
	ActivityReview     ActivityCategory = "review"
	ActivityObligation ActivityCategory = "obligation"
	ActivityDeadline   ActivityCategory = "deadline"
	ActivityFree       ActivityCategory = "free"
)

// Fixed reports whether activities of this category are anchored to their
// time once placed. Study, review and free-time entries are flexible; the
// synthesizer only ever inserts them into unoccupied slots.
func (c ActivityCategory) Fixed() bool {
	switch c {
	case ActivityRoutine, ActivityMeal, ActivityBreak, ActivityObligation, ActivityDeadline:
		return true
	default:
		return false
	}
}
