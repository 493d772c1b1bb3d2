package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/clock"
	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/repository"
)

type obligationService struct {
	obligations repository.ObligationRepo
}

func NewObligationService(obligations repository.ObligationRepo) ObligationService {
	return &obligationService{obligations: obligations}
}

func (s *obligationService) Add(ctx context.Context, in AddObligationInput) (*domain.Obligation, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("obligation title is required")
	}

	typeStr := strings.ToLower(strings.TrimSpace(in.Type))
	if typeStr == "" {
		typeStr = string(domain.ObligationOther)
	}
	if !domain.ValidObligationTypes[typeStr] {
		return nil, fmt.Errorf("unknown obligation type %q", in.Type)
	}

	startMin, err := clock.MinuteOfDay(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", in.StartTime, err)
	}
	endMin, err := clock.MinuteOfDay(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", in.EndTime, err)
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("end time must be after start time")
	}

	o := &domain.Obligation{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.ObligationType(typeStr),
		StartTime: startMin,
		EndTime:   endMin,
	}

	if len(in.Days) > 0 {
		o.Recurring = true
		for _, name := range in.Days {
			wd, ok := domain.ParseWeekday(name)
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", name)
			}
			o.DaysOfWeek = append(o.DaysOfWeek, wd)
		}
	} else {
		if in.StartDate == "" {
			return nil, fmt.Errorf("either weekdays or a date range is required")
		}
		if o.StartDate, err = time.Parse(dateLayout, in.StartDate); err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", in.StartDate, err)
		}
		if in.EndDate == "" {
			o.EndDate = o.StartDate
		} else if o.EndDate, err = time.Parse(dateLayout, in.EndDate); err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", in.EndDate, err)
		}
		if o.EndDate.Before(o.StartDate) {
			return nil, fmt.Errorf("end date is before start date")
		}
	}

	if err := s.obligations.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *obligationService) List(ctx context.Context) ([]*domain.Obligation, error) {
	return s.obligations.List(ctx)
}

func (s *obligationService) Remove(ctx context.Context, id string) error {
	if _, err := s.obligations.GetByID(ctx, id); err != nil {
		return err
	}
	return s.obligations.Delete(ctx, id)
}
