package domain

// Trainee is a program participant. BatchID is always resolved: when the raw
// batch reference matches nothing it points at the sentinel first batch.
type Trainee struct {
	ID          string
	TraineeName string
	Company     CompanyName

	// Optional contact fields; the exports do not carry reliable values, so
	// these may be empty or synthesized deterministically from the name.
	Email  string
	Phone  string
	Avatar string

	BatchID string

	// Rollups from the daily attendance log.
	PresentDaily int
	AbsentDaily  int
	LatesDaily   int

	// Rollups from the most recent 10-day record.
	Present10Day          int
	Absent10Day           int
	Late10Day             int
	LatestCompletion10Day int
}
