package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/studyflow/studyflow/internal/policy"
)

// Date recognizers, most explicit first. Each pattern is tried in order and
// the first token that yields a plausible calendar date wins. All patterns
// are fixed and anchored on digit/word boundaries; Go's regexp engine is
// linear-time, so untrusted input cannot trigger pathological backtracking.
var datePatterns = []*regexp.Regexp{
	// 9/13/2024, 9/13/24
	regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`),
	// 13.09.2024 (day first, dotted)
	regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{2,4})\b`),
	// September 13, 2024 / Sept 13 / September 13th
	regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,\s*(\d{4}))?\b`),
	// 13 September 2024 / 13 September
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)(?:\s+(\d{4}))?\b`),
	// Friday 9/13
	regexp.MustCompile(`(?i)\b(?:Mon|Tues?|Wednes|Thurs?|Fri|Satur|Sun)day,?\s+(\d{1,2})/(\d{1,2})\b`),
	// bare 9/13
	regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
}

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// findDate scans text with the ordered date recognizers and returns the
// first resolvable calendar date. Dates without an explicit year are
// resolved with the academic-calendar pivot rule against ref.
func findDate(text string, pol policy.Policies, ref time.Time) (time.Time, bool) {
	for i, pat := range datePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			if d, ok := buildDate(i, m, pol, ref); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

func buildDate(patternIdx int, m []string, pol policy.Policies, ref time.Time) (time.Time, bool) {
	switch patternIdx {
	case 0: // M/D/Y
		month, day := atoi(m[1]), atoi(m[2])
		return makeDate(expandYear(atoi(m[3])), month, day)
	case 1: // D.M.Y
		day, month := atoi(m[1]), atoi(m[2])
		return makeDate(expandYear(atoi(m[3])), month, day)
	case 2: // Month D[, Y]
		month, ok := parseMonth(m[1])
		if !ok {
			return time.Time{}, false
		}
		day := atoi(m[2])
		if m[3] != "" {
			return makeDate(atoi(m[3]), int(month), day)
		}
		return makeDate(pol.ResolveYear(month, ref), int(month), day)
	case 3: // D Month [Y]
		month, ok := parseMonth(m[2])
		if !ok {
			return time.Time{}, false
		}
		day := atoi(m[1])
		if m[3] != "" {
			return makeDate(atoi(m[3]), int(month), day)
		}
		return makeDate(pol.ResolveYear(month, ref), int(month), day)
	case 4, 5: // [Weekday] M/D
		month, day := atoi(m[1]), atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		return makeDate(pol.ResolveYear(time.Month(month), ref), month, day)
	}
	return time.Time{}, false
}

// makeDate validates the components strictly: time.Date normalizes overflow
// (Feb 30 -> Mar 2), which would silently accept junk.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 2000 || year > 2200 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

func parseMonth(s string) (time.Month, bool) {
	key := strings.ToLower(s)
	if len(key) > 3 {
		key = key[:3]
	}
	m, ok := monthAbbrev[key]
	return m, ok
}

func expandYear(y int) int {
	if y < 100 {
		return 2000 + y
	}
	return y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
