package domain

import "time"

// Deadline is a dated academic obligation extracted from a syllabus or added
// by hand. CourseCode is a weak reference: it may dangle if the course is
// later removed, and nothing enforces it.
type Deadline struct {
	ID               string
	Title            string
	Date             time.Time // calendar date, concrete year
	Type             DeadlineType
	CourseCode       string
	Priority         Priority
	StudyHoursNeeded int

	CreatedAt time.Time
}

// GeneralCourseCode is the sentinel course attribution for deadlines
// extracted from text that yielded no course.
const GeneralCourseCode = "GENERAL"

// NeedsReview reports whether this deadline type gets proximity review
// sessions injected ahead of its date.
func (d *Deadline) NeedsReview() bool {
	switch d.Type {
	case DeadlineExam, DeadlinePractical, DeadlineProject:
		return true
	default:
		return false
	}
}
