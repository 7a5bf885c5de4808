package domain

import "time"

// BatchFilter selects batches for a dataset query.
type BatchFilter struct {
	Status *BatchStatus
	Search *string // case-insensitive substring of the batch name
}

// TraineeFilter selects trainees for a dataset query.
type TraineeFilter struct {
	BatchID *string
	Company *CompanyName
	Search  *string // case-insensitive substring of the trainee name
}

// AttendanceFilter selects daily attendance records for a dataset query.
type AttendanceFilter struct {
	BatchID   *string
	TraineeID *string
	Status    *AttendanceStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}

// AssessmentFilter selects assessments for a dataset query.
type AssessmentFilter struct {
	BatchID   *string
	TraineeID *string
	Company   *CompanyName
	Outcome   *AssessmentOutcome
}
