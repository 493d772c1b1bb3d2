package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
)

// SQLiteObligationRepo implements ObligationRepo using a SQLite database.
type SQLiteObligationRepo struct {
	db *sql.DB
}

// NewSQLiteObligationRepo creates a new SQLiteObligationRepo.
func NewSQLiteObligationRepo(db *sql.DB) *SQLiteObligationRepo {
	return &SQLiteObligationRepo{db: db}
}

func (r *SQLiteObligationRepo) Create(ctx context.Context, o *domain.Obligation) error {
	query := `INSERT INTO obligations (id, title, type, recurring, days_of_week, start_time, end_time, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Title,
		string(o.Type),
		boolToInt(o.Recurring),
		encodeWeekdays(o.DaysOfWeek),
		o.StartTime,
		o.EndTime,
		o.StartDate.Format(dateLayout),
		o.EndDate.Format(dateLayout),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting obligation: %w", err)
	}
	return nil
}

func (r *SQLiteObligationRepo) GetByID(ctx context.Context, id string) (*domain.Obligation, error) {
	query := `SELECT id, title, type, recurring, days_of_week, start_time, end_time, start_date, end_date, created_at
		FROM obligations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	o, err := scanObligation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("obligation not found: %s", id)
		}
		return nil, err
	}
	return o, nil
}

func (r *SQLiteObligationRepo) List(ctx context.Context) ([]*domain.Obligation, error) {
	query := `SELECT id, title, type, recurring, days_of_week, start_time, end_time, start_date, end_date, created_at
		FROM obligations ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing obligations: %w", err)
	}
	defer rows.Close()

	var obligations []*domain.Obligation
	for rows.Next() {
		o, err := scanObligation(rows.Scan)
		if err != nil {
			return nil, err
		}
		obligations = append(obligations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating obligations: %w", err)
	}
	return obligations, nil
}

func (r *SQLiteObligationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM obligations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting obligation: %w", err)
	}
	return nil
}

func (r *SQLiteObligationRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM obligations`)
	if err != nil {
		return fmt.Errorf("clearing obligations: %w", err)
	}
	return nil
}

func scanObligation(scan func(dest ...any) error) (*domain.Obligation, error) {
	var o domain.Obligation
	var typeStr, daysStr, startDateStr, endDateStr, createdAtStr string
	var recurring int

	err := scan(&o.ID, &o.Title, &typeStr, &recurring, &daysStr, &o.StartTime, &o.EndTime, &startDateStr, &endDateStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning obligation: %w", err)
	}

	o.Type = domain.ObligationType(typeStr)
	o.Recurring = recurring != 0
	o.DaysOfWeek = decodeWeekdays(daysStr)

	if o.StartDate, err = time.Parse(dateLayout, startDateStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if o.EndDate, err = time.Parse(dateLayout, endDateStr); err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	if o.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &o, nil
}
