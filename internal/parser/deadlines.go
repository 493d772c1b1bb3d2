package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/policy"
)

// deadlineKeywords anchor the sentence scan. Order encodes classification
// precedence: exam-family outranks quiz, which outranks
// project/presentation/practical, with assignment as the generic default.
var deadlineKeywords = []struct {
	word string
	typ  domain.DeadlineType
}{
	{"final", domain.DeadlineExam},
	{"midterm", domain.DeadlineExam},
	{"exam", domain.DeadlineExam},
	{"test", domain.DeadlineExam},
	{"quiz", domain.DeadlineQuiz},
	{"project", domain.DeadlineProject},
	{"presentation", domain.DeadlinePresentation},
	{"practical", domain.DeadlinePractical},
	{"assignment", domain.DeadlineAssignment},
	{"due", domain.DeadlineAssignment},
	{"deadline", domain.DeadlineAssignment},
}

var sentenceSplitter = regexp.MustCompile(`[.!?\n]+`)

// Structured markers: syllabi habitually bold exam titles ("**Exam I**")
// apart from prose deadlines, and the keyword scan alone under-recognizes
// them. Each pattern pairs an emphasized title with a nearby weekday +
// slash-date.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\*\*(Exam\s+[IVX0-9]+)\*\*[^\n]*?(?:Mon|Tues?|Wednes|Thurs?|Fri|Satur|Sun)day,?\s+(\d{1,2})/(\d{1,2})`),
	regexp.MustCompile(`(?i)\*\*(Lab\s+Practical\s+[IVX0-9]+)\*\*[^\n]*?(?:Mon|Tues?|Wednes|Thurs?|Fri|Satur|Sun)day,?\s+(\d{1,2})/(\d{1,2})`),
	regexp.MustCompile(`(?i)\*\*(Lab\s+Exam\s+[IVX0-9]+)\*\*[^\n]*?(?:Mon|Tues?|Wednes|Thurs?|Fri|Satur|Sun)day,?\s+(\d{1,2})/(\d{1,2})`),
}

// extractDeadlines applies both extraction strategies and unifies the
// results. Duplicates produced by the two strategies matching overlapping
// text are collapsed by normalized title + date (each extraction carries a
// fresh ID, so ID-based dedup alone cannot catch them).
func extractDeadlines(text, courseCode string, pol policy.Policies, ref time.Time) []domain.Deadline {
	var out []domain.Deadline
	seen := make(map[string]bool)

	keep := func(d domain.Deadline) {
		key := strings.ToLower(d.Title) + "|" + d.Date.Format("2006-01-02")
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, d)
	}

	for _, d := range markerDeadlines(text, courseCode, pol, ref) {
		keep(d)
	}
	for _, d := range sentenceDeadlines(text, courseCode, pol, ref) {
		keep(d)
	}

	return out
}

// sentenceDeadlines is the keyword-anchored scan: any sentence mentioning a
// deadline keyword is searched for the first recognizable date token.
func sentenceDeadlines(text, courseCode string, pol policy.Policies, ref time.Time) []domain.Deadline {
	var out []domain.Deadline

	for _, sentence := range sentenceSplitter.Split(text, -1) {
		lower := strings.ToLower(sentence)

		typ, found := classify(lower)
		if !found {
			continue
		}
		date, ok := findDate(sentence, pol, ref)
		if !ok {
			continue
		}

		out = append(out, newDeadline(deadlineTitle(sentence, typ), date, typ, courseCode, pol, ref))
	}

	return out
}

func markerDeadlines(text, courseCode string, pol policy.Policies, ref time.Time) []domain.Deadline {
	var out []domain.Deadline

	for _, pat := range markerPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			month, day := atoi(m[2]), atoi(m[3])
			if month < 1 || month > 12 {
				continue
			}
			date, ok := makeDate(pol.ResolveYear(time.Month(month), ref), month, day)
			if !ok {
				continue
			}

			title := collapseSpaces(m[1])
			typ := domain.DeadlineExam
			if strings.Contains(strings.ToLower(title), "practical") {
				typ = domain.DeadlinePractical
			}
			out = append(out, newDeadline(title, date, typ, courseCode, pol, ref))
		}
	}

	return out
}

func classify(lowerSentence string) (domain.DeadlineType, bool) {
	for _, kw := range deadlineKeywords {
		if strings.Contains(lowerSentence, kw.word) {
			return kw.typ, true
		}
	}
	return "", false
}

func newDeadline(title string, date time.Time, typ domain.DeadlineType, courseCode string, pol policy.Policies, ref time.Time) domain.Deadline {
	priority := domain.PriorityMedium
	if typ == domain.DeadlineExam || typ == domain.DeadlinePractical {
		priority = domain.PriorityHigh
	}
	return domain.Deadline{
		ID:               uuid.New().String(),
		Title:            title,
		Date:             date,
		Type:             typ,
		CourseCode:       courseCode,
		Priority:         priority,
		StudyHoursNeeded: pol.StudyHours(typ),
		CreatedAt:        ref,
	}
}

// deadlineTitle derives a display title from the matched sentence, falling
// back to the capitalized type when the sentence is pure noise.
func deadlineTitle(sentence string, typ domain.DeadlineType) string {
	title := collapseSpaces(strings.ReplaceAll(sentence, "*", ""))
	title = strings.TrimPrefix(title, "- ")
	if title == "" {
		return titleCase(string(typ))
	}
	if len(title) > 80 {
		title = strings.TrimSpace(title[:80])
	}
	return title
}
