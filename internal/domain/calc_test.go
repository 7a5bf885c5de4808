package domain

import (
	"testing"
	"time"
)

func at(hour, minute int) *time.Time {
	t := time.Date(2025, time.October, 19, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestMinutesLate(t *testing.T) {
	tests := []struct {
		name    string
		arrival *time.Time
		want    int
		late    bool
	}{
		{"on the threshold", at(11, 0), 0, false},
		{"one minute past", at(11, 1), 1, true},
		{"quarter past", at(11, 15), 15, true},
		{"well before", at(9, 30), 0, false},
		{"afternoon", at(13, 0), 120, true},
		{"no arrival", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesLate(tt.arrival); got != tt.want {
				t.Errorf("MinutesLate = %d, want %d", got, tt.want)
			}
			if got := WasLate(tt.arrival); got != tt.late {
				t.Errorf("WasLate = %v, want %v", got, tt.late)
			}
		})
	}
}

func TestScores(t *testing.T) {
	tests := []struct {
		name                                                  string
		mapping, productKnowledge, presentability, softSkills int
		tech, soft, overall                                   float64
	}{
		{"all fives", 5, 5, 5, 5, 100, 100, 100},
		{"all threes", 3, 3, 3, 3, 60, 60, 60},
		{"mixed", 4, 5, 3, 2, 90, 50, 70},
		{"zeroes", 0, 0, 0, 0, 0, 0, 0},
		{"odd sum rounds at tenths", 2, 3, 4, 4, 50, 80, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scores(tt.mapping, tt.productKnowledge, tt.presentability, tt.softSkills)
			if got.Tech != tt.tech || got.Soft != tt.soft || got.Overall != tt.overall {
				t.Errorf("Scores = %+v, want tech=%v soft=%v overall=%v",
					got, tt.tech, tt.soft, tt.overall)
			}
		})
	}
}

func TestDetermineOutcome(t *testing.T) {
	tests := []struct {
		percent float64
		want    AssessmentOutcome
	}{
		{100, OutcomeAced},
		{95, OutcomeAced},
		{94.9, OutcomeExcellent},
		{85, OutcomeExcellent},
		{75, OutcomeVeryGood},
		{65, OutcomeGood},
		{50, OutcomeNeedsImprovement},
		{49.9, OutcomeFailed},
		{0, OutcomeFailed},
	}

	for _, tt := range tests {
		if got := DetermineOutcome(tt.percent); got != tt.want {
			t.Errorf("DetermineOutcome(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	var none [TenDayWindow]bool
	if got := CompletionPercent(none); got != 0 {
		t.Errorf("CompletionPercent(none) = %d, want 0", got)
	}

	var all [TenDayWindow]bool
	for i := range all {
		all[i] = true
	}
	if got := CompletionPercent(all); got != 100 {
		t.Errorf("CompletionPercent(all) = %d, want 100", got)
	}

	var half [TenDayWindow]bool
	for i := 0; i < 5; i++ {
		half[i] = true
	}
	if got := CompletionPercent(half); got != 50 {
		t.Errorf("CompletionPercent(half) = %d, want 50", got)
	}
}

func TestChecklistStatusFor(t *testing.T) {
	tests := []struct {
		percent int
		want    ChecklistStatus
	}{
		{0, ChecklistNotStarted},
		{100, ChecklistComplete},
		{1, ChecklistInProgress},
		{50, ChecklistInProgress},
		{99, ChecklistInProgress},
	}

	for _, tt := range tests {
		if got := ChecklistStatusFor(tt.percent); got != tt.want {
			t.Errorf("ChecklistStatusFor(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestBatchProgress(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.October, 11, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before start", time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC), 0},
		{"at start", r.Start, 0},
		{"midway", time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC), 50},
		{"at end", r.End, 100},
		{"after end", time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BatchProgress(tt.now, r); got != tt.want {
				t.Errorf("BatchProgress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAttendancePercent(t *testing.T) {
	tests := []struct {
		present, total, want int
	}{
		{0, 0, 0},
		{5, 10, 50},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
	}

	for _, tt := range tests {
		if got := AttendancePercent(tt.present, tt.total); got != tt.want {
			t.Errorf("AttendancePercent(%d, %d) = %d, want %d",
				tt.present, tt.total, got, tt.want)
		}
	}
}

func TestEntryID(t *testing.T) {
	date := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	if got := EntryID(date, "Mohamed Hany"); got != "2025-10-19 - Mohamed Hany" {
		t.Errorf("EntryID = %q", got)
	}
}

func TestTenDayRecordLabel(t *testing.T) {
	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC)
	got := TenDayRecordLabel("Mohamed Hany", "Batch 27", start, end)
	want := "Mohamed Hany - Batch 27 (Oct 19–Oct 30)"
	if got != want {
		t.Errorf("TenDayRecordLabel = %q, want %q", got, want)
	}
}
