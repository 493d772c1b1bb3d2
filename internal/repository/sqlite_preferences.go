package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studyflow/studyflow/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
// Preferences live in a single row; Get falls back to defaults when that
// row has never been written.
type SQLitePreferencesRepo struct {
	db *sql.DB
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(db *sql.DB) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: db}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (domain.Preferences, error) {
	query := `SELECT wake_hour, sleep_hour, focus_minutes, intensity, include_breaks,
		procrastination_pct, include_weekends, horizon_days
		FROM preferences WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Preferences
	var intensityStr string
	var includeBreaks, includeWeekends int
	err := row.Scan(&p.WakeHour, &p.SleepHour, &p.FocusMinutes, &intensityStr,
		&includeBreaks, &p.ProcrastinationBufferPct, &includeWeekends, &p.HorizonDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultPreferences(), nil
		}
		return domain.Preferences{}, fmt.Errorf("scanning preferences: %w", err)
	}

	p.Intensity = domain.Intensity(intensityStr)
	p.IncludeBreaks = includeBreaks != 0
	p.IncludeWeekends = includeWeekends != 0
	return p, nil
}

func (r *SQLitePreferencesRepo) Put(ctx context.Context, p domain.Preferences) error {
	query := `INSERT INTO preferences (id, wake_hour, sleep_hour, focus_minutes, intensity,
			include_breaks, procrastination_pct, include_weekends, horizon_days)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			wake_hour = excluded.wake_hour,
			sleep_hour = excluded.sleep_hour,
			focus_minutes = excluded.focus_minutes,
			intensity = excluded.intensity,
			include_breaks = excluded.include_breaks,
			procrastination_pct = excluded.procrastination_pct,
			include_weekends = excluded.include_weekends,
			horizon_days = excluded.horizon_days`
	_, err := r.db.ExecContext(ctx, query,
		p.WakeHour,
		p.SleepHour,
		p.FocusMinutes,
		string(p.Intensity),
		boolToInt(p.IncludeBreaks),
		p.ProcrastinationBufferPct,
		boolToInt(p.IncludeWeekends),
		p.HorizonDays,
	)
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
