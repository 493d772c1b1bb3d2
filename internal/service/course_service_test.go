package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/testutil"
)

func newCourseService(t *testing.T) CourseService {
	database := testutil.NewTestDB(t)
	return NewCourseService(repository.NewSQLiteCourseRepo(database))
}

func TestCourseService_AddNormalizesCode(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	c, err := svc.Add(ctx, "  bio1205 ", "Intro to Biology", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "BIO1205", c.Code)
	assert.Equal(t, 3, c.Difficulty)
	assert.Equal(t, 3, c.Credits)
}

func TestCourseService_AddRejectsOutOfRange(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "BIO1205", "Bio", 9, 3)
	assert.Error(t, err)

	_, err = svc.Add(ctx, "BIO1205", "Bio", 3, 7)
	assert.Error(t, err)

	_, err = svc.Add(ctx, "  ", "Bio", 3, 3)
	assert.Error(t, err)
}

func TestCourseService_EmptyNameDefaultsToCode(t *testing.T) {
	svc := newCourseService(t)

	c, err := svc.Add(context.Background(), "CHM2045", "", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "CHM2045", c.Name)
}

func TestCourseService_RemoveMissing(t *testing.T) {
	svc := newCourseService(t)
	err := svc.Remove(context.Background(), "NOPE101")
	assert.Error(t, err)
}

func TestDeadlineService_AddDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewDeadlineService(repository.NewSQLiteDeadlineRepo(database))
	ctx := context.Background()

	d, err := svc.Add(ctx, AddDeadlineInput{Title: "Final Exam", Date: "2024-12-10", Type: "exam"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, d.Priority)
	assert.Equal(t, 8, d.StudyHoursNeeded)
	assert.Equal(t, domain.GeneralCourseCode, d.CourseCode)

	d, err = svc.Add(ctx, AddDeadlineInput{Title: "Essay", Date: "2024-10-01", Type: ""})
	require.NoError(t, err)
	assert.Equal(t, domain.DeadlineAssignment, d.Type)
	assert.Equal(t, domain.PriorityMedium, d.Priority)
	assert.Equal(t, 3, d.StudyHoursNeeded)
}

func TestDeadlineService_AddRejectsBadInput(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewDeadlineService(repository.NewSQLiteDeadlineRepo(database))
	ctx := context.Background()

	_, err := svc.Add(ctx, AddDeadlineInput{Title: "", Date: "2024-10-01"})
	assert.Error(t, err)

	_, err = svc.Add(ctx, AddDeadlineInput{Title: "X", Date: "10/01/2024"})
	assert.Error(t, err)

	_, err = svc.Add(ctx, AddDeadlineInput{Title: "X", Date: "2024-10-01", Type: "seminar"})
	assert.Error(t, err)

	_, err = svc.Add(ctx, AddDeadlineInput{Title: "X", Date: "2024-10-01", Priority: "urgent"})
	assert.Error(t, err)
}

func TestDeadlineService_Upcoming(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewDeadlineService(repository.NewSQLiteDeadlineRepo(database))
	ctx := context.Background()

	_, err := svc.Add(ctx, AddDeadlineInput{Title: "Soon", Date: "2024-09-15"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, AddDeadlineInput{Title: "Far", Date: "2024-11-15"})
	require.NoError(t, err)

	from := mustDate(t, "2024-09-10")
	got, err := svc.Upcoming(ctx, from, 14)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Soon", got[0].Title)
}

func TestObligationService_AddRecurring(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewObligationService(repository.NewSQLiteObligationRepo(database))
	ctx := context.Background()

	o, err := svc.Add(ctx, AddObligationInput{
		Title:     "Morning shift",
		Type:      "work",
		Days:      []string{"mon", "wed", "fri"},
		StartTime: "9:00 AM",
		EndTime:   "13:00",
	})
	require.NoError(t, err)
	assert.True(t, o.Recurring)
	assert.Equal(t, 540, o.StartTime)
	assert.Equal(t, 780, o.EndTime)
	assert.Len(t, o.DaysOfWeek, 3)
}

func TestObligationService_AddOneOffDefaultsEndDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewObligationService(repository.NewSQLiteObligationRepo(database))

	o, err := svc.Add(context.Background(), AddObligationInput{
		Title:     "Dentist",
		Type:      "appointment",
		StartTime: "14:00",
		EndTime:   "15:00",
		StartDate: "2024-09-20",
	})
	require.NoError(t, err)
	assert.False(t, o.Recurring)
	assert.True(t, o.EndDate.Equal(o.StartDate))
}

func TestObligationService_AddRejectsBackwardsTimes(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewObligationService(repository.NewSQLiteObligationRepo(database))

	_, err := svc.Add(context.Background(), AddObligationInput{
		Title:     "X",
		Days:      []string{"mon"},
		StartTime: "15:00",
		EndTime:   "14:00",
	})
	assert.Error(t, err)
}

func TestPreferencesService_UpdatePatchesOnlyGivenFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPreferencesService(repository.NewSQLitePreferencesRepo(database))
	ctx := context.Background()

	wake := 6
	weekends := false
	got, err := svc.Update(ctx, PreferencesPatch{
		WakeHour:        &wake,
		Intensity:       "intensive",
		IncludeWeekends: &weekends,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, got.WakeHour)
	assert.Equal(t, domain.IntensityIntensive, got.Intensity)
	assert.False(t, got.IncludeWeekends)
	// untouched fields keep defaults
	assert.Equal(t, 23, got.SleepHour)
	assert.Equal(t, 25, got.FocusMinutes)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestPreferencesService_UpdateRejectsInvalid(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPreferencesService(repository.NewSQLitePreferencesRepo(database))

	bad := 99
	_, err := svc.Update(context.Background(), PreferencesPatch{WakeHour: &bad})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), PreferencesPatch{Intensity: "extreme"})
	assert.Error(t, err)
}
