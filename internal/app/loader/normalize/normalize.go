// Package normalize maps the exports' free-text values onto the domain's
// closed vocabularies and parses verbose date, time, and percentage strings
// into canonical forms.
//
// Every function here recovers from bad input with a documented default;
// none of them can fail. The keyword rule ordering inside each function is
// significant (first match wins) and mirrors the source system exactly —
// do not reorder or alphabetize.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/redacademy/academy-backend/internal/domain"
)

// AttendanceStatus maps raw status text onto the attendance vocabulary.
// Keyword order: absent, tour, off, present; anything else defaults to
// Present. The second return is false when no keyword fired.
func AttendanceStatus(text string) (domain.AttendanceStatus, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "absent"):
		return domain.AttendanceAbsent, true
	case strings.Contains(lower, "tour"):
		return domain.AttendanceTourDay, true
	case strings.Contains(lower, "off"):
		return domain.AttendanceOffDay, true
	case strings.Contains(lower, "present"):
		return domain.AttendancePresent, true
	default:
		return domain.AttendancePresent, false
	}
}

// AssessmentOutcome maps raw outcome text onto the outcome vocabulary.
// Keyword order: aced, excellent, "very good", good, needs, failed; anything
// else defaults to Good. "very good" must be tested before "good".
func AssessmentOutcome(text string) (domain.AssessmentOutcome, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "aced"):
		return domain.OutcomeAced, true
	case strings.Contains(lower, "excellent"):
		return domain.OutcomeExcellent, true
	case strings.Contains(lower, "very good"):
		return domain.OutcomeVeryGood, true
	case strings.Contains(lower, "good"):
		return domain.OutcomeGood, true
	case strings.Contains(lower, "needs"):
		return domain.OutcomeNeedsImprovement, true
	case strings.Contains(lower, "failed"):
		return domain.OutcomeFailed, true
	default:
		return domain.OutcomeGood, false
	}
}

// BatchStatus maps raw status text onto the batch vocabulary. Keyword order:
// completed, active, plan; anything else defaults to Planning.
func BatchStatus(text string) (domain.BatchStatus, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "completed"):
		return domain.BatchStatusCompleted, true
	case strings.Contains(lower, "active"):
		return domain.BatchStatusActive, true
	case strings.Contains(lower, "plan"):
		return domain.BatchStatusPlanning, true
	default:
		return domain.BatchStatusPlanning, false
	}
}

// Company maps raw company text onto the canonical company list: exact
// case-insensitive match first, then containment either direction in list
// order, then the designated fallback. The second return is false only on
// fallback.
func Company(text string) (domain.CompanyName, bool) {
	needle := domain.NormalizeName(text)
	if needle == "" {
		return domain.FallbackCompany, false
	}

	for _, c := range domain.Companies {
		if domain.NormalizeName(string(c)) == needle {
			return c, true
		}
	}

	for _, c := range domain.Companies {
		name := domain.NormalizeName(string(c))
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			return c, true
		}
	}

	return domain.FallbackCompany, false
}

// percentRe matches the first decimal number substring.
var percentRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Percent extracts the first decimal number from the text; absent or
// unparsable input yields 0.
func Percent(text string) float64 {
	m := percentRe.FindString(text)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// Int extracts the first integer from the text. The second return is false
// when the text carries no number.
func Int(text string) (int, bool) {
	m := percentRe.FindString(text)
	if m == "" {
		return 0, false
	}
	whole, _, _ := strings.Cut(m, ".")
	v, err := strconv.Atoi(whole)
	if err != nil {
		return 0, false
	}
	return v, true
}
