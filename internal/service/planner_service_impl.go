package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/parser"
	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/scheduler"
)

type plannerService struct {
	courses     repository.CourseRepo
	deadlines   repository.DeadlineRepo
	obligations repository.ObligationRepo
	prefs       repository.PreferencesRepo
	cache       *gocache.Cache
	obs         UseCaseObserver
}

func NewPlannerService(
	courses repository.CourseRepo,
	deadlines repository.DeadlineRepo,
	obligations repository.ObligationRepo,
	prefs repository.PreferencesRepo,
	obs UseCaseObserver,
) PlannerService {
	return &plannerService{
		courses:     courses,
		deadlines:   deadlines,
		obligations: obligations,
		prefs:       prefs,
		cache:       gocache.New(10*time.Minute, 15*time.Minute),
		obs:         obs,
	}
}

func (s *plannerService) ImportText(ctx context.Context, raw, sourceName string) (summary *ImportSummary, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{"source": sourceName}
		if summary != nil {
			fields["courses"] = len(summary.Courses)
			fields["deadlines"] = len(summary.Deadlines)
		}
		observe(ctx, s.obs, "import_text", started, err, fields)
	}()

	res := parser.Parse(raw, parser.Options{SourceName: sourceName})

	summary = &ImportSummary{Fallback: res.Fallback}
	for i := range res.Courses {
		c := res.Courses[i]
		if err = s.courses.Upsert(ctx, &c); err != nil {
			return nil, fmt.Errorf("importing course %s: %w", c.Code, err)
		}
		summary.Courses = append(summary.Courses, &c)
	}
	for i := range res.Deadlines {
		d := res.Deadlines[i]
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
			return nil, fmt.Errorf("importing deadline %q: %w", d.Title, err)
		}
		summary.Deadlines = append(summary.Deadlines, &d)
	}

	s.InvalidateCache()
	return summary, nil
}

func (s *plannerService) Generate(ctx context.Context, start time.Time, horizonDays int) (schedule map[string]domain.DaySchedule, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.obs, "generate_schedule", started, err, map[string]any{
			"start":   start.Format(dateLayout),
			"horizon": horizonDays,
			"days":    len(schedule),
		})
	}()

	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.generateWith(ctx, start, horizonDays, prefs)
}

func (s *plannerService) Variants(ctx context.Context, start time.Time, horizonDays int) (map[domain.Intensity]map[string]domain.DaySchedule, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}

	variants := make(map[domain.Intensity]map[string]domain.DaySchedule, 3)
	for _, intensity := range []domain.Intensity{domain.IntensityRelaxed, domain.IntensityBalanced, domain.IntensityIntensive} {
		p := prefs
		p.Intensity = intensity
		schedule, err := s.generateWith(ctx, start, horizonDays, p)
		if err != nil {
			return nil, err
		}
		variants[intensity] = schedule
	}
	return variants, nil
}

func (s *plannerService) InvalidateCache() {
	s.cache.Flush()
}

func (s *plannerService) generateWith(ctx context.Context, start time.Time, horizonDays int, prefs domain.Preferences) (map[string]domain.DaySchedule, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	deadlines, err := s.deadlines.List(ctx)
	if err != nil {
		return nil, err
	}
	obligations, err := s.obligations.List(ctx)
	if err != nil {
		return nil, err
	}

	key := scheduleKey(start, horizonDays, prefs, courses, deadlines, obligations)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(map[string]domain.DaySchedule), nil
	}

	in := scheduler.Input{
		Prefs:       prefs,
		Start:       start,
		HorizonDays: horizonDays,
	}
	for _, c := range courses {
		in.Courses = append(in.Courses, *c)
	}
	for _, d := range deadlines {
		in.Deadlines = append(in.Deadlines, *d)
	}
	for _, o := range obligations {
		in.Obligations = append(in.Obligations, *o)
	}

	schedule := scheduler.Synthesize(in)
	s.cache.Set(key, schedule, gocache.DefaultExpiration)
	return schedule, nil
}

// scheduleKey fingerprints everything synthesis depends on, so a cache hit
// is only possible when the result would be identical.
func scheduleKey(start time.Time, horizonDays int, prefs domain.Preferences, courses []*domain.Course, deadlines []*domain.Deadline, obligations []*domain.Obligation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d|%+v", start.Format(dateLayout), horizonDays, prefs)
	for _, c := range courses {
		fmt.Fprintf(&b, "|c:%s:%d:%d", c.Code, c.Difficulty, c.Credits)
	}
	for _, d := range deadlines {
		fmt.Fprintf(&b, "|d:%s:%s:%s", d.ID, d.Date.Format(dateLayout), d.Type)
	}
	for _, o := range obligations {
		fmt.Fprintf(&b, "|o:%s:%d:%d", o.ID, o.StartTime, o.EndTime)
	}
	return b.String()
}
