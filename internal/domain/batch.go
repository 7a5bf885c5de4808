package domain

import "time"

// DateRange is an inclusive start/end pair with start <= end.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Batch is a training cohort. TraineeIDs and the rollup totals are populated
// by the aggregation pass after all foreign keys are resolved; until then
// they are zero values.
type Batch struct {
	ID        string
	BatchName string
	Status    BatchStatus
	DateRange DateRange

	// Members, in trainee input order.
	TraineeIDs []string

	// Rollups over the members' 10-day records.
	PresentTotal10Day  int
	AbsentTotal10Day   int
	LateTotal10Day     int
	AvgCompletion10Day int
}
