package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/policy"
	"github.com/studyflow/studyflow/internal/repository"
)

const dateLayout = "2006-01-02"

type deadlineService struct {
	deadlines repository.DeadlineRepo
	policies  policy.Policies
}

func NewDeadlineService(deadlines repository.DeadlineRepo) DeadlineService {
	return &deadlineService{deadlines: deadlines, policies: policy.Default()}
}

func (s *deadlineService) Add(ctx context.Context, in AddDeadlineInput) (*domain.Deadline, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("deadline title is required")
	}

	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", in.Date, err)
	}

	typeStr := strings.ToLower(strings.TrimSpace(in.Type))
	if typeStr == "" {
		typeStr = string(domain.DeadlineAssignment)
	}
	if !domain.ValidDeadlineTypes[typeStr] {
		return nil, fmt.Errorf("unknown deadline type %q", in.Type)
	}
	dt := domain.DeadlineType(typeStr)

	priority := domain.Priority(strings.ToLower(strings.TrimSpace(in.Priority)))
	switch priority {
	case "":
		priority = domain.PriorityMedium
		if dt == domain.DeadlineExam || dt == domain.DeadlinePractical {
			priority = domain.PriorityHigh
		}
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return nil, fmt.Errorf("unknown priority %q", in.Priority)
	}

	hours := in.StudyHours
	if hours <= 0 {
		hours = s.policies.StudyHours(dt)
	}

	courseCode := strings.ToUpper(strings.TrimSpace(in.CourseCode))
	if courseCode == "" {
		courseCode = domain.GeneralCourseCode
	}

	d := &domain.Deadline{
		ID:               uuid.New().String(),
		Title:            title,
		Date:             date,
		Type:             dt,
		CourseCode:       courseCode,
		Priority:         priority,
		StudyHoursNeeded: hours,
	}
	if err := s.deadlines.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deadlineService) List(ctx context.Context) ([]*domain.Deadline, error) {
	return s.deadlines.List(ctx)
}

func (s *deadlineService) Upcoming(ctx context.Context, from time.Time, days int) ([]*domain.Deadline, error) {
	if days < 1 {
		days = 1
	}
	to := from.AddDate(0, 0, days)
	return s.deadlines.ListBetween(ctx, from.Format(dateLayout), to.Format(dateLayout))
}

func (s *deadlineService) Remove(ctx context.Context, id string) error {
	if _, err := s.deadlines.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deadlines.Delete(ctx, id)
}
