package domain

import "time"

// DailyAttendance is one trainee-day in the daily log. MinutesLate and
// WasLate are formula fields computed from ArrivalTime against the 11:00
// threshold; they are never taken from the export's own formula columns.
type DailyAttendance struct {
	ID      string
	EntryID string // "YYYY-MM-DD - {Trainee Name}"
	Date    time.Time

	ArrivalTime   *time.Time
	DepartureTime *time.Time
	Status        AttendanceStatus

	TraineeID string
	BatchID   string

	// Formula fields.
	MinutesLate int
	WasLate     bool
}

// TenDayWindow is the number of working days tracked per attendance window.
const TenDayWindow = 10

// Attendance10Day is one trainee's fixed 10-working-day tracking window.
// CompletionPercent and ChecklistStatus are computed from Days; the
// present/absent/late counts come from the export when parsable and are
// otherwise derived from Days.
type Attendance10Day struct {
	ID          string
	Record      string // "{Name} - {Batch Name} (Oct 19–Oct 30)"
	PeriodStart time.Time
	PeriodEnd   time.Time

	Days [TenDayWindow]bool // true = present

	CompletionPercent  int
	ChecklistStatus    ChecklistStatus
	AttendanceAIReport string

	TraineeID string
	BatchID   string

	// Rollups over the 10 days.
	PresentCount int
	AbsentCount  int
	LateCount    int
}
