package domain

// Snapshot is the complete dataset produced by one pipeline run: every entity
// collection in input order, fully resolved and fully aggregated, plus the
// dashboard-wide statistics.
//
// A snapshot is built once per load and never mutated afterwards. Consumers
// must treat it as read-only; anything that needs to filter, sort, or rework
// the data operates on copies (see internal/service/dataset).
type Snapshot struct {
	Batches         []Batch
	Trainees        []Trainee
	Companies       []Company
	DailyAttendance []DailyAttendance
	Attendance10Day []Attendance10Day
	Assessments     []Assessment

	Stats DashboardStats
}

// OutcomeCount is one bucket of the assessment outcome distribution.
type OutcomeCount struct {
	Outcome AssessmentOutcome
	Count   int
}

// CompanyLeader is one row of the top-companies leaderboard.
type CompanyLeader struct {
	Name     CompanyName
	Trainees int
}

// DashboardStats holds the dashboard-wide aggregates computed by the rollup
// pass. Attendance counts cover the export's reporting day.
type DashboardStats struct {
	ActiveBatches    int
	PlanningBatches  int
	CompletedBatches int
	TotalTrainees    int

	TodayPresent int
	TodayAbsent  int
	TodayLate    int
	TodayOnTour  int

	AttendancePercent int

	// All six outcomes, best to worst, zero counts included.
	OutcomeDistribution []OutcomeCount

	// Top companies by trainee count, ties in trainee input order.
	TopCompanies []CompanyLeader
}
