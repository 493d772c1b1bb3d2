package repository

import (
	"context"

	"github.com/studyflow/studyflow/internal/domain"
)

// CourseRepo persists courses keyed by canonical code.
type CourseRepo interface {
	// Upsert inserts the course or updates it in place when the code exists.
	Upsert(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Delete(ctx context.Context, code string) error
	DeleteAll(ctx context.Context) error
}

// DeadlineRepo persists deadlines keyed by ID.
type DeadlineRepo interface {
	Create(ctx context.Context, d *domain.Deadline) error
	GetByID(ctx context.Context, id string) (*domain.Deadline, error)
	List(ctx context.Context) ([]*domain.Deadline, error)
	// ListBetween returns deadlines with from <= date <= to, dates as
	// YYYY-MM-DD strings.
	ListBetween(ctx context.Context, from, to string) ([]*domain.Deadline, error)
	// ExistsByTitleAndDate supports content-level dedup across parses.
	ExistsByTitleAndDate(ctx context.Context, title, date string) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// ObligationRepo persists fixed commitments.
type ObligationRepo interface {
	Create(ctx context.Context, o *domain.Obligation) error
	GetByID(ctx context.Context, id string) (*domain.Obligation, error)
	List(ctx context.Context) ([]*domain.Obligation, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// PreferencesRepo persists the single session preference set.
type PreferencesRepo interface {
	// Get returns the stored preferences, or defaults when none are saved.
	Get(ctx context.Context) (domain.Preferences, error)
	Put(ctx context.Context, p domain.Preferences) error
}
