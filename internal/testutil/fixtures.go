package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithDifficulty(d int) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = d
	}
}

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.Credits = n
	}
}

func NewTestCourse(code, name string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC()
	c := &domain.Course{
		Code:       code,
		Name:       name,
		Difficulty: 3,
		Credits:    3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deadline options
type DeadlineOption func(*domain.Deadline)

func WithDeadlineType(dt domain.DeadlineType) DeadlineOption {
	return func(d *domain.Deadline) {
		d.Type = dt
	}
}

func WithCourseCode(code string) DeadlineOption {
	return func(d *domain.Deadline) {
		d.CourseCode = code
	}
}

func WithPriority(p domain.Priority) DeadlineOption {
	return func(d *domain.Deadline) {
		d.Priority = p
	}
}

func NewTestDeadline(title string, date time.Time, opts ...DeadlineOption) *domain.Deadline {
	d := &domain.Deadline{
		ID:               uuid.New().String(),
		Title:            title,
		Date:             date,
		Type:             domain.DeadlineAssignment,
		CourseCode:       domain.GeneralCourseCode,
		Priority:         domain.PriorityMedium,
		StudyHoursNeeded: 3,
		CreatedAt:        time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Obligation options
type ObligationOption func(*domain.Obligation)

func WithWeekdays(days ...time.Weekday) ObligationOption {
	return func(o *domain.Obligation) {
		o.Recurring = true
		o.DaysOfWeek = days
	}
}

func WithTimeRange(start, end int) ObligationOption {
	return func(o *domain.Obligation) {
		o.StartTime = start
		o.EndTime = end
	}
}

func WithDateRange(start, end time.Time) ObligationOption {
	return func(o *domain.Obligation) {
		o.StartDate = start
		o.EndDate = end
	}
}

func NewTestObligation(title string, opts ...ObligationOption) *domain.Obligation {
	now := time.Now().UTC()
	o := &domain.Obligation{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.ObligationOther,
		StartTime: 9 * 60,
		EndTime:   10 * 60,
		StartDate: now,
		EndDate:   now,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
