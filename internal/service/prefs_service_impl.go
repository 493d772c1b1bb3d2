package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/repository"
)

type preferencesService struct {
	prefs repository.PreferencesRepo
}

func NewPreferencesService(prefs repository.PreferencesRepo) PreferencesService {
	return &preferencesService{prefs: prefs}
}

func (s *preferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

func (s *preferencesService) Save(ctx context.Context, p domain.Preferences) error {
	if err := validatePreferences(p); err != nil {
		return err
	}
	return s.prefs.Put(ctx, p)
}

func (s *preferencesService) Update(ctx context.Context, patch PreferencesPatch) (domain.Preferences, error) {
	p, err := s.prefs.Get(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	p.WakeHour = domain.IntFromPtrWithDefault(p.WakeHour, patch.WakeHour)
	p.SleepHour = domain.IntFromPtrWithDefault(p.SleepHour, patch.SleepHour)
	p.FocusMinutes = domain.IntFromPtrWithDefault(p.FocusMinutes, patch.FocusMinutes)
	p.Intensity = domain.Intensity(domain.CoalesceStr(strings.ToLower(patch.Intensity), string(p.Intensity)))
	p.IncludeBreaks = domain.BoolFromPtrWithDefault(p.IncludeBreaks, patch.IncludeBreaks)
	p.ProcrastinationBufferPct = domain.IntFromPtrWithDefault(p.ProcrastinationBufferPct, patch.ProcrastinationBufferPct)
	p.IncludeWeekends = domain.BoolFromPtrWithDefault(p.IncludeWeekends, patch.IncludeWeekends)
	p.HorizonDays = domain.IntFromPtrWithDefault(p.HorizonDays, patch.HorizonDays)

	if err := validatePreferences(p); err != nil {
		return domain.Preferences{}, err
	}
	if err := s.prefs.Put(ctx, p); err != nil {
		return domain.Preferences{}, err
	}
	return p, nil
}

func validatePreferences(p domain.Preferences) error {
	if p.WakeHour < 0 || p.WakeHour > 23 {
		return fmt.Errorf("wake hour must be between 0 and 23, got %d", p.WakeHour)
	}
	if p.SleepHour < 0 || p.SleepHour > 23 {
		return fmt.Errorf("sleep hour must be between 0 and 23, got %d", p.SleepHour)
	}
	if p.FocusMinutes < 15 || p.FocusMinutes > 60 {
		return fmt.Errorf("focus minutes must be between 15 and 60, got %d", p.FocusMinutes)
	}
	if !domain.ValidIntensities[string(p.Intensity)] {
		return fmt.Errorf("unknown intensity %q", p.Intensity)
	}
	if p.ProcrastinationBufferPct < 0 || p.ProcrastinationBufferPct > 100 {
		return fmt.Errorf("procrastination buffer must be between 0 and 100, got %d", p.ProcrastinationBufferPct)
	}
	if p.HorizonDays < 1 || p.HorizonDays > 120 {
		return fmt.Errorf("horizon must be between 1 and 120 days, got %d", p.HorizonDays)
	}
	return nil
}
