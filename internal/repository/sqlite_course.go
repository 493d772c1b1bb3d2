package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db *sql.DB
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db *sql.DB) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

func (r *SQLiteCourseRepo) Upsert(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (code, name, difficulty, credits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			difficulty = excluded.difficulty,
			credits = excluded.credits,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		c.Code,
		c.Name,
		c.Difficulty,
		c.Credits,
		nowUTC(),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `SELECT code, name, difficulty, credits, created_at, updated_at
		FROM courses WHERE UPPER(code) = UPPER(?)`
	row := r.db.QueryRowContext(ctx, query, code)

	var c domain.Course
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.Code, &c.Name, &c.Difficulty, &c.Credits, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course not found: %s", code)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT code, name, difficulty, credits, created_at, updated_at
		FROM courses ORDER BY created_at, code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var c domain.Course
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.Code, &c.Name, &c.Difficulty, &c.Credits, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE UPPER(code) = UPPER(?)`, code)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses`)
	if err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}
	return nil
}
