package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

// SQLiteDeadlineRepo implements DeadlineRepo using a SQLite database.
type SQLiteDeadlineRepo struct {
	db *sql.DB
}

// NewSQLiteDeadlineRepo creates a new SQLiteDeadlineRepo.
func NewSQLiteDeadlineRepo(db *sql.DB) *SQLiteDeadlineRepo {
	return &SQLiteDeadlineRepo{db: db}
}

func (r *SQLiteDeadlineRepo) Create(ctx context.Context, d *domain.Deadline) error {
	query := `INSERT INTO deadlines (id, title, date, type, course_code, priority, study_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Title,
		d.Date.Format(dateLayout),
		string(d.Type),
		d.CourseCode,
		string(d.Priority),
		d.StudyHoursNeeded,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting deadline: %w", err)
	}
	return nil
}

func (r *SQLiteDeadlineRepo) GetByID(ctx context.Context, id string) (*domain.Deadline, error) {
	query := `SELECT id, title, date, type, course_code, priority, study_hours, created_at
		FROM deadlines WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	d, err := scanDeadline(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deadline not found: %s", id)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDeadlineRepo) List(ctx context.Context) ([]*domain.Deadline, error) {
	query := `SELECT id, title, date, type, course_code, priority, study_hours, created_at
		FROM deadlines ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing deadlines: %w", err)
	}
	defer rows.Close()

	var deadlines []*domain.Deadline
	for rows.Next() {
		d, err := scanDeadline(rows.Scan)
		if err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deadlines: %w", err)
	}
	return deadlines, nil
}

func (r *SQLiteDeadlineRepo) ListBetween(ctx context.Context, from, to string) ([]*domain.Deadline, error) {
	query := `SELECT id, title, date, type, course_code, priority, study_hours, created_at
		FROM deadlines WHERE date >= ? AND date <= ? ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing deadlines by range: %w", err)
	}
	defer rows.Close()

	var deadlines []*domain.Deadline
	for rows.Next() {
		d, err := scanDeadline(rows.Scan)
		if err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deadlines: %w", err)
	}
	return deadlines, nil
}

func (r *SQLiteDeadlineRepo) ExistsByTitleAndDate(ctx context.Context, title, date string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deadlines WHERE LOWER(title) = LOWER(?) AND date = ?`,
		title, date,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking deadline existence: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteDeadlineRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM deadlines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting deadline: %w", err)
	}
	return nil
}

func (r *SQLiteDeadlineRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM deadlines`)
	if err != nil {
		return fmt.Errorf("clearing deadlines: %w", err)
	}
	return nil
}

func scanDeadline(scan func(dest ...any) error) (*domain.Deadline, error) {
	var d domain.Deadline
	var dateStr, typeStr, priorityStr, createdAtStr string

	err := scan(&d.ID, &d.Title, &dateStr, &typeStr, &d.CourseCode, &priorityStr, &d.StudyHoursNeeded, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning deadline: %w", err)
	}

	d.Type = domain.DeadlineType(typeStr)
	d.Priority = domain.Priority(priorityStr)

	if d.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &d, nil
}
