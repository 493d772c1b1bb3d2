package parser

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/policy"
)

// subjectAbbrevs maps long-form subject names to the canonical code prefix
// used when a pattern captures only the course number.
var subjectAbbrevs = map[string]string{
	"BIOLOGY":          "BIO",
	"CHEMISTRY":        "CHM",
	"PHYSICS":          "PHY",
	"MATHEMATICS":      "MAT",
	"CALCULUS":         "MAT",
	"STATISTICS":       "STA",
	"PSYCHOLOGY":       "PSY",
	"SOCIOLOGY":        "SOC",
	"HISTORY":          "HIS",
	"ENGLISH":          "ENG",
	"ECONOMICS":        "ECO",
	"PHILOSOPHY":       "PHI",
	"ANTHROPOLOGY":     "ANT",
	"ACCOUNTING":       "ACC",
	"COMPUTER SCIENCE": "CSC",
}

// subjectNames holds the map keys longest first, then alphabetically, so the
// regex alternation and the fallback scan are order-stable across runs.
var subjectNames = func() []string {
	names := make([]string, 0, len(subjectAbbrevs))
	for name := range subjectAbbrevs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

var subjectNamePattern = func() *regexp.Regexp {
	quoted := make([]string, len(subjectNames))
	for i, name := range subjectNames {
		quoted[i] = regexp.QuoteMeta(name)
	}
	// Longest alternative first so COMPUTER SCIENCE beats any prefix.
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\s+(\d{4})\b\s*[-:]?\s*([^:\n]*)`)
}()

var (
	// BIO1205, CHM-2045L
	abbrevCodePattern = regexp.MustCompile(`\b([A-Za-z]{2,4})[- ]?(\d{4})([A-Za-z]?)\b\s*[-:]?\s*([^:\n]*)`)
	// Generic token followed by a description of at least 10 characters.
	genericCodePattern = regexp.MustCompile(`\b([A-Za-z]{2,4})[- ]?(\d{3,4})([A-Za-z]?)\s*[-:]\s*([^:\n]{10,80})`)
	// Explicit "Course:" label.
	courseLabelPattern = regexp.MustCompile(`(?i)Course:\s*([^\n]+)`)

	semesterNoise  = regexp.MustCompile(`(?i)\b(Fall|Spring|Summer|Winter)\s*20\d{2}\b`)
	labelCodeToken = regexp.MustCompile(`(?i)\b([A-Za-z]{2,4})[- ]?(\d{3,4})([A-Za-z]?)\b`)
)

// knownFragments are tails of longer subject words that the generic token
// pattern is prone to clipping ("...biOLOGY 1205"). Codes starting with one
// of these are rejected as truncation artifacts.
var knownFragments = []string{"OGY", "LOGY", "OLOGY", "ENCE", "ISTRY", "STRY", "TICS", "ICS", "OMICS"}

// extractCourses runs the ordered course recognizers over the text.
// First-pattern-wins: a code already seen in this parse is never replaced.
func extractCourses(text string, pol policy.Policies, now time.Time) []domain.Course {
	var courses []domain.Course
	seen := make(map[string]bool)

	add := func(code, name string) {
		code = canonicalCode(code)
		if code == "" || seen[code] || truncationArtifact(code) {
			return
		}
		seen[code] = true
		courses = append(courses, domain.Course{
			Code:       code,
			Name:       cleanDescription(name),
			Difficulty: pol.FallbackDifficulty,
			Credits:    pol.FallbackCredits,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	// 1. Long-form subject name + 4-digit number.
	for _, m := range subjectNamePattern.FindAllStringSubmatch(text, -1) {
		subject := strings.ToUpper(collapseSpaces(m[1]))
		add(subjectAbbrevs[subject]+m[2], m[3])
	}

	// 2. Abbreviated subject code + 4-digit number.
	for _, m := range abbrevCodePattern.FindAllStringSubmatch(text, -1) {
		add(m[1]+m[2]+m[3], m[4])
	}

	// 3. Generic token with a substantial description.
	for _, m := range genericCodePattern.FindAllStringSubmatch(text, -1) {
		add(m[1]+m[2]+m[3], m[4])
	}

	// 4. Explicit "Course:" label; pull a code token out of the free text if
	// one is present, otherwise synthesize from the leading words.
	for _, m := range courseLabelPattern.FindAllStringSubmatch(text, -1) {
		freeText := strings.TrimSpace(m[1])
		if freeText == "" {
			continue
		}
		if tok := labelCodeToken.FindStringSubmatch(freeText); tok != nil {
			add(tok[1]+tok[2]+tok[3], freeText)
			continue
		}
		add(synthesizeCode(freeText), freeText)
	}

	return courses
}

// fallbackCourse builds the deterministic placeholder emitted when no
// recognizer matched: downstream always needs at least one course to
// schedule against.
func fallbackCourse(text, sourceName string, pol policy.Policies, now time.Time) domain.Course {
	code, name := "COURSE101", "Your Course"

	// When several subject keywords appear, the one mentioned first wins.
	lower := strings.ToLower(text)
	bestIdx := -1
	for _, subject := range subjectNames {
		idx := strings.Index(lower, strings.ToLower(subject))
		if idx < 0 || (bestIdx >= 0 && idx >= bestIdx) {
			continue
		}
		bestIdx = idx
		code = subjectAbbrevs[subject] + "101"
		name = titleCase(subject)
	}

	if code == "COURSE101" && sourceName != "" {
		stem := strings.TrimSuffix(filepath.Base(sourceName), filepath.Ext(sourceName))
		if synth := synthesizeCode(stem); synth != "" {
			code = synth
			name = titleCase(stem)
		}
	}

	return domain.Course{
		Code:       code,
		Name:       name,
		Difficulty: pol.FallbackDifficulty,
		Credits:    pol.FallbackCredits,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// canonicalCode upper-cases and strips separators from a captured code.
// Anything of length 3 or shorter is a partial capture, not a course code.
func canonicalCode(raw string) string {
	code := strings.ToUpper(raw)
	code = strings.NewReplacer(" ", "", "-", "").Replace(code)
	if len(code) <= 3 {
		return ""
	}
	return code
}

func truncationArtifact(code string) bool {
	letters := strings.TrimRight(code, "0123456789")
	// Trailing lab-section letter is not part of the prefix.
	if len(letters) > 0 && len(letters) == len(code) {
		return true // no digits at all
	}
	for _, frag := range knownFragments {
		if strings.HasPrefix(code, frag) {
			return true
		}
	}
	return false
}

// cleanDescription strips emphasis asterisks, semester-label noise and a
// leading "- " from captured description text.
func cleanDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "*", "")
	desc = semesterNoise.ReplaceAllString(desc, "")
	desc = strings.TrimSpace(desc)
	desc = strings.TrimPrefix(desc, "- ")
	desc = strings.TrimPrefix(desc, "-")
	return collapseSpaces(strings.TrimSpace(desc))
}

// synthesizeCode derives an upper-case code from free text: up to four
// leading letters plus "101".
func synthesizeCode(text string) string {
	var letters []rune
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 4 {
				break
			}
		}
	}
	if len(letters) < 2 {
		return ""
	}
	return string(letters) + "101"
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
