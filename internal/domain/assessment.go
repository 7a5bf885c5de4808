package domain

// Assessment is one graded assessment event for a trainee. The four
// sub-scores are on a 0-5 scale; the three percentages and the outcome are
// formula fields computed from them.
type Assessment struct {
	ID              string
	AssessmentTitle string

	Mapping          int
	ProductKnowledge int
	Presentability   int
	SoftSkills       int

	Attendance int // days attended during the assessment period
	Absence    int // days absent during the assessment period

	AssessmentOutcome  AssessmentOutcome
	InstructorComment  string
	AssessmentAIReport string
	Company            CompanyName

	TraineeID string
	BatchID   string

	// Formula fields, one decimal place each.
	TechScorePercent float64
	SoftScorePercent float64
	OverallPercent   float64
}
