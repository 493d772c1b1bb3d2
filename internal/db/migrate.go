package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// All statements re-run on every startup; additive ALTERs
			// report duplicate columns on second application.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		code        TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		difficulty  INTEGER NOT NULL DEFAULT 3 CHECK(difficulty BETWEEN 1 AND 5),
		credits     INTEGER NOT NULL DEFAULT 3 CHECK(credits BETWEEN 1 AND 6),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS deadlines (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		date         TEXT NOT NULL,
		type         TEXT NOT NULL
		             CHECK(type IN ('assignment','exam','quiz','project','presentation','practical')),
		course_code  TEXT NOT NULL DEFAULT '',
		priority     TEXT NOT NULL DEFAULT 'medium'
		             CHECK(priority IN ('low','medium','high')),
		study_hours  INTEGER NOT NULL DEFAULT 3,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deadlines_date ON deadlines(date)`,

	`CREATE TABLE IF NOT EXISTS obligations (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		type          TEXT NOT NULL DEFAULT 'other',
		recurring     INTEGER NOT NULL DEFAULT 0,
		days_of_week  TEXT NOT NULL DEFAULT '',
		start_time    INTEGER NOT NULL,
		end_time      INTEGER NOT NULL,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	// Single-row table: the session's preference set.
	`CREATE TABLE IF NOT EXISTS preferences (
		id                  INTEGER PRIMARY KEY CHECK(id = 1),
		wake_hour           INTEGER NOT NULL,
		sleep_hour          INTEGER NOT NULL,
		focus_minutes       INTEGER NOT NULL,
		intensity           TEXT NOT NULL
		                    CHECK(intensity IN ('relaxed','balanced','intensive')),
		include_breaks      INTEGER NOT NULL,
		procrastination_pct INTEGER NOT NULL,
		include_weekends    INTEGER NOT NULL,
		horizon_days        INTEGER NOT NULL
	)`,
}
