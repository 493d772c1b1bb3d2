package scheduler

import (
	"math/rand"

	"github.com/studyflow/studyflow/internal/domain"
)

// courseRotation hands out courses in a shuffled round-robin: the order
// within a cycle is randomized, but every course appears exactly once before
// any course repeats. Subjects interleave instead of drawing
// random-with-replacement.
type courseRotation struct {
	order  []domain.Course
	cursor int
}

func newCourseRotation(courses []domain.Course, rng *rand.Rand) *courseRotation {
	order := make([]domain.Course, len(courses))
	copy(order, courses)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return &courseRotation{order: order}
}

func (r *courseRotation) next() domain.Course {
	c := r.order[r.cursor%len(r.order)]
	r.cursor++
	return c
}
