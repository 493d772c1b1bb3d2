package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Add(ctx context.Context, code, name string, difficulty, credits int) (*domain.Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("course code is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = code
	}
	if difficulty == 0 {
		difficulty = 3
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("difficulty must be between 1 and 5, got %d", difficulty)
	}
	if credits == 0 {
		credits = 3
	}
	if credits < 1 || credits > 6 {
		return nil, fmt.Errorf("credits must be between 1 and 6, got %d", credits)
	}

	c := &domain.Course{
		Code:       code,
		Name:       name,
		Difficulty: difficulty,
		Credits:    credits,
	}
	if err := s.courses.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Get(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.GetByCode(ctx, code)
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) Remove(ctx context.Context, code string) error {
	if _, err := s.courses.GetByCode(ctx, code); err != nil {
		return err
	}
	return s.courses.Delete(ctx, code)
}
