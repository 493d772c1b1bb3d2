package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/snapshot"
)

type snapshotService struct {
	courses     repository.CourseRepo
	deadlines   repository.DeadlineRepo
	obligations repository.ObligationRepo
	prefs       repository.PreferencesRepo
	planner     PlannerService
	obs         UseCaseObserver
}

func NewSnapshotService(
	courses repository.CourseRepo,
	deadlines repository.DeadlineRepo,
	obligations repository.ObligationRepo,
	prefs repository.PreferencesRepo,
	planner PlannerService,
	obs UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		courses:     courses,
		deadlines:   deadlines,
		obligations: obligations,
		prefs:       prefs,
		planner:     planner,
		obs:         obs,
	}
}

func (s *snapshotService) Save(ctx context.Context, path string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.obs, "snapshot_save", started, err, map[string]any{"path": path})
	}()

	var state snapshot.State

	courses, err := s.courses.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range courses {
		state.Courses = append(state.Courses, *c)
	}

	deadlines, err := s.deadlines.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range deadlines {
		state.Deadlines = append(state.Deadlines, *d)
	}

	obligations, err := s.obligations.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range obligations {
		state.Obligations = append(state.Obligations, *o)
	}

	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return err
	}
	state.Preferences = &prefs

	// Schedules regenerate from state, so carrying one is best-effort.
	if schedule, genErr := s.planner.Generate(ctx, time.Now(), 0); genErr == nil {
		state.Schedule = schedule
	}

	data, err := snapshot.Encode(state, time.Now())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func (s *snapshotService) Load(ctx context.Context, path string, replace bool) (summary *ImportSummary, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.obs, "snapshot_load", started, err, map[string]any{"path": path, "replace": replace})
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	state, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}

	if replace {
		if err = s.deadlines.DeleteAll(ctx); err != nil {
			return nil, err
		}
		if err = s.obligations.DeleteAll(ctx); err != nil {
			return nil, err
		}
		if err = s.courses.DeleteAll(ctx); err != nil {
			return nil, err
		}
	}

	summary = &ImportSummary{}
	for i := range state.Courses {
		c := state.Courses[i]
		if err = s.courses.Upsert(ctx, &c); err != nil {
			return nil, fmt.Errorf("restoring course %s: %w", c.Code, err)
		}
		summary.Courses = append(summary.Courses, &c)
	}
	for i := range state.Deadlines {
		d := state.Deadlines[i]
		exists, checkErr := s.deadlines.ExistsByTitleAndDate(ctx, d.Title, d.Date.Format(dateLayout))
		if checkErr != nil {
			err = checkErr
			return nil, err
		}
		if exists {
			summary.SkippedDupes++
			continue
		}
		if err = s.deadlines.Create(ctx, &d); err != nil {
			return nil, fmt.Errorf("restoring deadline %q: %w", d.Title, err)
		}
		summary.Deadlines = append(summary.Deadlines, &d)
	}
	for i := range state.Obligations {
		o := state.Obligations[i]
		if _, getErr := s.obligations.GetByID(ctx, o.ID); getErr == nil {
			continue
		}
		if err = s.obligations.Create(ctx, &o); err != nil {
			return nil, fmt.Errorf("restoring obligation %q: %w", o.Title, err)
		}
	}
	if state.Preferences != nil {
		if err = s.prefs.Put(ctx, *state.Preferences); err != nil {
			return nil, fmt.Errorf("restoring preferences: %w", err)
		}
	}

	s.planner.InvalidateCache()
	return summary, nil
}
