package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/snapshot"
)

func TestSnapshot_SaveThenLoadIntoFreshStore(t *testing.T) {
	src := newTestServices(t)
	ctx := context.Background()

	_, err := src.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)
	_, err = NewObligationService(src.obligations).Add(ctx, AddObligationInput{
		Title:     "Standup",
		Type:      "meeting",
		Days:      []string{"monday"},
		StartTime: "9:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, src.snapshots.Save(ctx, path))

	dst := newTestServices(t)
	summary, err := dst.snapshots.Load(ctx, path, false)
	require.NoError(t, err)
	require.Len(t, summary.Courses, 1)
	assert.Equal(t, "BIO1205", summary.Courses[0].Code)
	assert.Len(t, summary.Deadlines, 2)

	obligations, err := dst.obligations.List(ctx)
	require.NoError(t, err)
	require.Len(t, obligations, 1)
	assert.Equal(t, "Standup", obligations[0].Title)
}

func TestSnapshot_SaveCarriesScheduleAndVersion(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, s.snapshots.Save(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc snapshot.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, snapshot.Version, doc.Version)
	assert.NotEmpty(t, doc.GeneratedAt)
	assert.NotEmpty(t, doc.SelectedSchedule)
}

func TestSnapshot_LoadReplaceWipesExistingState(t *testing.T) {
	src := newTestServices(t)
	ctx := context.Background()
	_, err := src.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, src.snapshots.Save(ctx, path))

	dst := newTestServices(t)
	_, err = NewCourseService(dst.courses).Add(ctx, "PSY2012", "Psychology", 2, 3)
	require.NoError(t, err)

	_, err = dst.snapshots.Load(ctx, path, true)
	require.NoError(t, err)

	courses, err := dst.courses.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "BIO1205", courses[0].Code)
}

func TestSnapshot_LoadMergeSkipsDuplicateDeadlines(t *testing.T) {
	src := newTestServices(t)
	ctx := context.Background()
	_, err := src.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, src.snapshots.Save(ctx, path))

	_, err = src.snapshots.Load(ctx, path, false)
	require.NoError(t, err)

	deadlines, err := src.deadlines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deadlines, 2)
}

func TestSnapshot_LoadRejectsCorruptFile(t *testing.T) {
	s := newTestServices(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := s.snapshots.Load(context.Background(), path, false)
	assert.Error(t, err)
}

func TestSnapshot_LoadMissingFile(t *testing.T) {
	s := newTestServices(t)
	_, err := s.snapshots.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), false)
	assert.Error(t, err)
}

func TestSnapshot_PreferencesSurviveRoundTrip(t *testing.T) {
	src := newTestServices(t)
	ctx := context.Background()

	p := domain.DefaultPreferences()
	p.WakeHour = 6
	p.Intensity = domain.IntensityIntensive
	require.NoError(t, src.prefs.Put(ctx, p))

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, src.snapshots.Save(ctx, path))

	dst := newTestServices(t)
	_, err := dst.snapshots.Load(ctx, path, false)
	require.NoError(t, err)

	got, err := dst.prefs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
