// Package parser turns unstructured syllabus text into Course and Deadline
// records by pattern matching over known academic-calendar idioms. It never
// fails: unparseable input degrades to a deterministic placeholder course so
// downstream stages always have something to schedule against.
package parser

import (
	"time"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/policy"
)

// Options tunes one parse run.
type Options struct {
	// Reference anchors year resolution for dates with no explicit year.
	// Zero means time.Now().
	Reference time.Time

	// SourceName is an optional filename hint for the fallback course.
	SourceName string

	// Policies overrides the heuristic set; nil means policy.Default().
	Policies *policy.Policies
}

// Result is the parse outcome. Fallback reports that no course recognizer
// matched and Courses holds the single placeholder.
type Result struct {
	Courses   []domain.Course
	Deadlines []domain.Deadline
	Fallback  bool
}

// Parse scans raw text for course identifiers and deadline occurrences.
// Course codes are deduplicated first-pattern-wins; deadlines get fresh IDs
// on every call, so two parses of the same text agree on everything except
// deadline IDs.
func Parse(raw string, opts Options) Result {
	pol := policy.Default()
	if opts.Policies != nil {
		pol = *opts.Policies
	}
	ref := opts.Reference
	if ref.IsZero() {
		ref = time.Now()
	}

	// Input is untrusted upload content; cap it before matching.
	if pol.MaxParseBytes > 0 && len(raw) > pol.MaxParseBytes {
		raw = raw[:pol.MaxParseBytes]
	}

	res := Result{
		Courses: extractCourses(raw, pol, ref),
	}
	if len(res.Courses) == 0 {
		res.Courses = []domain.Course{fallbackCourse(raw, opts.SourceName, pol, ref)}
		res.Fallback = true
	}

	courseCode := domain.GeneralCourseCode
	if !res.Fallback {
		courseCode = res.Courses[0].Code
	}
	res.Deadlines = extractDeadlines(raw, courseCode, pol, ref)

	return res
}
