package domain

import (
	"fmt"
	"math"
	"time"
)

// lateThresholdMinute is 11:00 expressed as a minute of the day. Arrivals
// strictly after it count as late.
const lateThresholdMinute = 11 * 60

// MinutesLate returns whole minutes past the 11:00 threshold, 0 when the
// arrival is at or before 11:00 or absent.
func MinutesLate(arrival *time.Time) int {
	if arrival == nil {
		return 0
	}
	minute := arrival.Hour()*60 + arrival.Minute()
	if minute <= lateThresholdMinute {
		return 0
	}
	return minute - lateThresholdMinute
}

// WasLate reports whether the arrival is strictly after 11:00.
func WasLate(arrival *time.Time) bool {
	if arrival == nil {
		return false
	}
	return arrival.Hour()*60+arrival.Minute() > lateThresholdMinute
}

// ScoreSet holds the three assessment percentages, one decimal place each.
type ScoreSet struct {
	Tech    float64
	Soft    float64
	Overall float64
}

// Scores computes the assessment percentages from the four 0-5 sub-scores.
//
//	tech    = (productKnowledge + mapping) / 10 × 100
//	soft    = (softSkills + presentability) / 10 × 100
//	overall = sum of all four / 20 × 100
func Scores(mapping, productKnowledge, presentability, softSkills int) ScoreSet {
	tech := float64(productKnowledge+mapping) / 10 * 100
	soft := float64(softSkills+presentability) / 10 * 100
	overall := float64(productKnowledge+mapping+presentability+softSkills) / 20 * 100
	return ScoreSet{
		Tech:    roundTenth(tech),
		Soft:    roundTenth(soft),
		Overall: roundTenth(overall),
	}
}

// roundTenth rounds half-up at the tenths digit.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// DetermineOutcome maps an overall percentage onto the six-tier outcome
// scale. Thresholds are evaluated top-down, first match wins.
func DetermineOutcome(overallPercent float64) AssessmentOutcome {
	switch {
	case overallPercent >= 95:
		return OutcomeAced
	case overallPercent >= 85:
		return OutcomeExcellent
	case overallPercent >= 75:
		return OutcomeVeryGood
	case overallPercent >= 65:
		return OutcomeGood
	case overallPercent >= 50:
		return OutcomeNeedsImprovement
	default:
		return OutcomeFailed
	}
}

// CompletionPercent returns the 10-day completion as a whole percentage.
func CompletionPercent(days [TenDayWindow]bool) int {
	completed := 0
	for _, d := range days {
		if d {
			completed++
		}
	}
	return int(math.Round(float64(completed) / TenDayWindow * 100))
}

// ChecklistStatusFor maps a completion percentage onto the checklist states:
// 0 → Not Started, 100 → Complete, anything between → In Progress.
func ChecklistStatusFor(completionPercent int) ChecklistStatus {
	switch {
	case completionPercent == 0:
		return ChecklistNotStarted
	case completionPercent == 100:
		return ChecklistComplete
	default:
		return ChecklistInProgress
	}
}

// BatchProgress returns how far "now" sits inside the batch date range as a
// whole percentage, clamped to 0 before the start and 100 after the end.
func BatchProgress(now time.Time, r DateRange) int {
	if !now.After(r.Start) {
		return 0
	}
	if !now.Before(r.End) {
		return 100
	}
	elapsed := now.Sub(r.Start)
	total := r.End.Sub(r.Start)
	return int(math.Round(float64(elapsed) / float64(total) * 100))
}

// AttendancePercent returns present/total as a whole percentage, 0 when
// total is 0.
func AttendancePercent(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// EntryID builds the composite daily-attendance identifier.
func EntryID(date time.Time, traineeName string) string {
	return fmt.Sprintf("%s - %s", date.Format("2006-01-02"), traineeName)
}

// TenDayRecordLabel builds the human-readable 10-day record name.
func TenDayRecordLabel(traineeName, batchName string, start, end time.Time) string {
	return fmt.Sprintf("%s - %s (%s–%s)",
		traineeName, batchName, start.Format("Jan 2"), end.Format("Jan 2"))
}

// Clamp bounds v to the inclusive [min, max] range.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
