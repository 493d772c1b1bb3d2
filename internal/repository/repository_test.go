package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/testutil"
)

func TestCourseRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	course := testutil.NewTestCourse("BIO1205", "Intro to Biology", testutil.WithDifficulty(4))
	require.NoError(t, repo.Upsert(ctx, course))

	got, err := repo.GetByCode(ctx, "bio1205")
	require.NoError(t, err)
	assert.Equal(t, "BIO1205", got.Code)
	assert.Equal(t, "Intro to Biology", got.Name)
	assert.Equal(t, 4, got.Difficulty)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCourseRepo_UpsertUpdatesInPlace(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCourse("CHM2045", "Chemistry")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCourse("CHM2045", "General Chemistry", testutil.WithCredits(4))))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "General Chemistry", courses[0].Name)
	assert.Equal(t, 4, courses[0].Credits)
}

func TestCourseRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)

	_, err := repo.GetByCode(context.Background(), "NOPE101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCourseRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCourse("PSY2012", "Psychology")))
	require.NoError(t, repo.Delete(ctx, "psy2012"))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestDeadlineRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(database)
	ctx := context.Background()

	later := testutil.NewTestDeadline("Final Exam", time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
		testutil.WithDeadlineType(domain.DeadlineExam), testutil.WithPriority(domain.PriorityHigh))
	earlier := testutil.NewTestDeadline("Quiz 1", time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
		testutil.WithDeadlineType(domain.DeadlineQuiz), testutil.WithCourseCode("BIO1205"))

	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	deadlines, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	assert.Equal(t, "Quiz 1", deadlines[0].Title)
	assert.Equal(t, "BIO1205", deadlines[0].CourseCode)
	assert.Equal(t, domain.DeadlineExam, deadlines[1].Type)
	assert.Equal(t, domain.PriorityHigh, deadlines[1].Priority)
}

func TestDeadlineRepo_ListBetween(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(database)
	ctx := context.Background()

	for _, day := range []int{5, 15, 25} {
		d := testutil.NewTestDeadline("D", time.Date(2024, 10, day, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Create(ctx, d))
	}

	got, err := repo.ListBetween(ctx, "2024-10-10", "2024-10-20")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-10-15", got[0].Date.Format("2006-01-02"))
}

func TestDeadlineRepo_ExistsByTitleAndDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(database)
	ctx := context.Background()

	d := testutil.NewTestDeadline("Exam I", time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, d))

	exists, err := repo.ExistsByTitleAndDate(ctx, "exam i", "2024-09-13")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTitleAndDate(ctx, "Exam I", "2024-09-14")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeadlineRepo_GetAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(database)
	ctx := context.Background()

	d := testutil.NewTestDeadline("Lab report", time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab report", got.Title)
	assert.True(t, got.Date.Equal(d.Date))

	require.NoError(t, repo.Delete(ctx, d.ID))
	_, err = repo.GetByID(ctx, d.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestObligationRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteObligationRepo(database)
	ctx := context.Background()

	o := testutil.NewTestObligation("Morning shift",
		testutil.WithWeekdays(time.Monday, time.Wednesday, time.Friday),
		testutil.WithTimeRange(9*60, 13*60))
	o.Type = domain.ObligationWork
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning shift", got.Title)
	assert.Equal(t, domain.ObligationWork, got.Type)
	assert.True(t, got.Recurring)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, got.DaysOfWeek)
	assert.Equal(t, 9*60, got.StartTime)
	assert.Equal(t, 13*60, got.EndTime)
}

func TestObligationRepo_OneOffKeepsDateRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteObligationRepo(database)
	ctx := context.Background()

	start := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 9, 12, 0, 0, 0, 0, time.UTC)
	o := testutil.NewTestObligation("Conference", testutil.WithDateRange(start, end))
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.Recurring)
	assert.Empty(t, got.DaysOfWeek)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.EndDate.Equal(end))
}

func TestObligationRepo_DeleteAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteObligationRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestObligation("A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestObligation("B")))
	require.NoError(t, repo.DeleteAll(ctx))

	obligations, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, obligations)
}

func TestPreferencesRepo_DefaultsWhenUnset(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(database)

	prefs, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestPreferencesRepo_PutThenGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(database)
	ctx := context.Background()

	p := domain.DefaultPreferences()
	p.WakeHour = 6
	p.Intensity = domain.IntensityIntensive
	p.IncludeWeekends = false
	require.NoError(t, repo.Put(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.SleepHour = 22
	require.NoError(t, repo.Put(ctx, p))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 22, got.SleepHour)
}
