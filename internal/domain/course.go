package domain

import "time"

// Course is a tracked academic subject. Code is the identity key: canonical
// upper-case, unique within the session. Re-adding an existing code updates
// the record in place.
type Course struct {
	Code       string
	Name       string
	Difficulty int // 1-5
	Credits    int // 1-6

	CreatedAt time.Time
	UpdatedAt time.Time
}
