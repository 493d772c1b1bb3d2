package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/testutil"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

type testServices struct {
	db          *sql.DB
	courses     repository.CourseRepo
	deadlines   repository.DeadlineRepo
	obligations repository.ObligationRepo
	prefs       repository.PreferencesRepo
	planner     PlannerService
	snapshots   SnapshotService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := &testServices{
		db:          database,
		courses:     repository.NewSQLiteCourseRepo(database),
		deadlines:   repository.NewSQLiteDeadlineRepo(database),
		obligations: repository.NewSQLiteObligationRepo(database),
		prefs:       repository.NewSQLitePreferencesRepo(database),
	}
	s.planner = NewPlannerService(s.courses, s.deadlines, s.obligations, s.prefs, NoopUseCaseObserver{})
	s.snapshots = NewSnapshotService(s.courses, s.deadlines, s.obligations, s.prefs, s.planner, NoopUseCaseObserver{})
	return s
}
