package normalize

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			"plain",
			"October 1, 2025",
			time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"with time and zone",
			"November 5, 2025 11:20 AM (GMT+2)",
			time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"no comma",
			"March 15 2026",
			time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"unknown month falls back to January",
			"Octobr 3, 2025",
			time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
			true,
		},
		{"no date at all", "soon", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.text)
			if ok != tt.ok || !got.Equal(tt.want) {
				t.Errorf("Date(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	start, end, ok := DateRange("October 1, 2025 → October 15, 2025")
	if !ok {
		t.Fatal("DateRange returned ok=false")
	}
	if !start.Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestDateRangeMissingEnd(t *testing.T) {
	start, end, ok := DateRange("October 1, 2025")
	if !ok {
		t.Fatal("DateRange returned ok=false")
	}
	if !end.Equal(start) {
		t.Errorf("missing end should reuse start, got start=%v end=%v", start, end)
	}
}

func TestDateRangeUnparsableStart(t *testing.T) {
	_, _, ok := DateRange("sometime → October 15, 2025")
	if ok {
		t.Error("DateRange with unparsable start should return ok=false")
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		text         string
		hour, minute int
		ok           bool
	}{
		{"11:20 AM", 11, 20, true},
		{"October 19, 2025 9:05 AM (GMT+2)", 9, 5, true},
		{"12:00 AM", 0, 0, true},
		{"12:30 PM", 12, 30, true},
		{"1:15 pm", 13, 15, true},
		{"no time here", 0, 0, false},
	}

	for _, tt := range tests {
		hour, minute, ok := TimeOfDay(tt.text)
		if hour != tt.hour || minute != tt.minute || ok != tt.ok {
			t.Errorf("TimeOfDay(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.text, hour, minute, ok, tt.hour, tt.minute, tt.ok)
		}
	}
}

func TestAt(t *testing.T) {
	date := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	got := At(date, 11, 15)
	want := time.Date(2025, time.October, 19, 11, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At = %v, want %v", got, want)
	}
}
