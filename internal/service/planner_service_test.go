package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/domain"
)

const bioSyllabus = "BIOLOGY 1205 - Intro to Bio\n" +
	"The midterm exam is on September 13, 2024. Quiz 1 is due September 20, 2024."

func TestPlanner_ImportTextPersistsCoursesAndDeadlines(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	summary, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)
	require.Len(t, summary.Courses, 1)
	assert.Equal(t, "BIO1205", summary.Courses[0].Code)
	assert.False(t, summary.Fallback)
	assert.Len(t, summary.Deadlines, 2)

	courses, err := s.courses.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	deadlines, err := s.deadlines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deadlines, 2)
}

func TestPlanner_ImportTextSkipsDuplicatesOnReimport(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	first, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)
	require.Len(t, first.Deadlines, 2)

	second, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)
	assert.Empty(t, second.Deadlines)
	assert.Equal(t, 2, second.SkippedDupes)

	deadlines, err := s.deadlines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deadlines, 2)
}

func TestPlanner_ImportTextFallback(t *testing.T) {
	s := newTestServices(t)

	summary, err := s.planner.ImportText(context.Background(), "", "notes.txt")
	require.NoError(t, err)
	assert.True(t, summary.Fallback)
	require.Len(t, summary.Courses, 1)
	assert.Equal(t, "COURSE101", summary.Courses[0].Code)
}

func TestPlanner_GenerateIsDeterministic(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	start := mustDate(t, "2024-09-09")
	a, err := s.planner.Generate(ctx, start, 7)
	require.NoError(t, err)
	b, err := s.planner.Generate(ctx, start, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 7)
}

func TestPlanner_GenerateReflectsNewState(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	start := mustDate(t, "2024-09-09")

	before, err := s.planner.Generate(ctx, start, 1)
	require.NoError(t, err)
	day := before["2024-09-09"]
	assert.Zero(t, day.CountCategory(domain.ActivityStudy))

	_, err = s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	after, err := s.planner.Generate(ctx, start, 1)
	require.NoError(t, err)
	day = after["2024-09-09"]
	assert.Positive(t, day.CountCategory(domain.ActivityStudy))
}

func TestPlanner_VariantsCoverAllIntensities(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.planner.ImportText(ctx, bioSyllabus, "bio.txt")
	require.NoError(t, err)

	start := mustDate(t, "2024-09-09")
	variants, err := s.planner.Variants(ctx, start, 1)
	require.NoError(t, err)
	require.Len(t, variants, 3)

	relaxedDay := variants[domain.IntensityRelaxed]["2024-09-09"]
	intensiveDay := variants[domain.IntensityIntensive]["2024-09-09"]
	relaxed := relaxedDay.CountCategory(domain.ActivityStudy)
	intensive := intensiveDay.CountCategory(domain.ActivityStudy)
	assert.Greater(t, intensive, relaxed)
}
