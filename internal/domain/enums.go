package domain

// BatchStatus represents the lifecycle stage of a training batch.
type BatchStatus string

const (
	BatchStatusPlanning  BatchStatus = "Planning"
	BatchStatusActive    BatchStatus = "Active"
	BatchStatusCompleted BatchStatus = "Completed"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPlanning, BatchStatusActive, BatchStatusCompleted:
		return true
	}
	return false
}

// AttendanceStatus represents a trainee's state on a single training day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceTourDay AttendanceStatus = "Tour Day"
	AttendanceOffDay  AttendanceStatus = "Off Day"
)

func (s AttendanceStatus) String() string { return string(s) }

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceTourDay, AttendanceOffDay:
		return true
	}
	return false
}

// ChecklistStatus is the three-state summary of a 10-day window's completion.
type ChecklistStatus string

const (
	ChecklistNotStarted ChecklistStatus = "Not Started"
	ChecklistInProgress ChecklistStatus = "In Progress"
	ChecklistComplete   ChecklistStatus = "Complete"
)

func (s ChecklistStatus) String() string { return string(s) }

func (s ChecklistStatus) IsValid() bool {
	switch s {
	case ChecklistNotStarted, ChecklistInProgress, ChecklistComplete:
		return true
	}
	return false
}

// AssessmentOutcome is the six-tier grade derived from an assessment's
// overall percentage.
type AssessmentOutcome string

const (
	OutcomeFailed           AssessmentOutcome = "Failed"
	OutcomeNeedsImprovement AssessmentOutcome = "Needs Improvement"
	OutcomeGood             AssessmentOutcome = "Good"
	OutcomeVeryGood         AssessmentOutcome = "Very Good"
	OutcomeExcellent        AssessmentOutcome = "Excellent"
	OutcomeAced             AssessmentOutcome = "Aced"
)

func (o AssessmentOutcome) String() string { return string(o) }

func (o AssessmentOutcome) IsValid() bool {
	switch o {
	case OutcomeFailed, OutcomeNeedsImprovement, OutcomeGood,
		OutcomeVeryGood, OutcomeExcellent, OutcomeAced:
		return true
	}
	return false
}

// AllOutcomes lists every assessment outcome, best to worst. The dashboard's
// outcome distribution is reported in this order.
var AllOutcomes = []AssessmentOutcome{
	OutcomeAced,
	OutcomeExcellent,
	OutcomeVeryGood,
	OutcomeGood,
	OutcomeNeedsImprovement,
	OutcomeFailed,
}
