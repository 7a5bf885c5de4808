package domain

// CompanyName is one of the closed set of partner company names. Free-text
// company values from the exports are normalized onto this vocabulary; values
// that match nothing fall back to FallbackCompany.
type CompanyName string

// FallbackCompany is the designated default for unmatchable company text.
const FallbackCompany CompanyName = "RED"

// Companies is the canonical company vocabulary in its fixed order. The order
// matters: containment matching during normalization returns the first hit.
var Companies = []CompanyName{
	"RED", "Impact", "Housology", "Creed", "Med", "Petra",
	"New Levels", "Be Own", "Landbank", "Masr", "Masharef",
	"Core", "Dlleni", "Property Bank", "Misr Alaqareya", "RK",
	"BYOUT", "RED WINNERS", "SEVEN", "Perfect level", "Perfect Deal",
	"Roots", "Arabian Estate", "LIV", "Venture Investment", "Road investment",
	"Volume", "Hexdar", "Hexda", "Enlight", "Majestic", "Need",
	"Trio Homes", "Propertunity", "Block 89", "GC", "Caregenic",
	"Malaaz", "Great Castle", "Cartel", "Urban Nest", "Infinity Home",
	"Good People", "Alux Investement", "Elite Home", "SM", "Builidivia",
	"Premium Homes", "Units", "Next Estate", "Jumeirah", "3 Media",
	"Proj", "The Mediator", "Masharf", "Projex", "Florida", "CGI",
	"Casablanca", "EG Broker", "Elira",
}

func (c CompanyName) String() string { return string(c) }

func (c CompanyName) IsValid() bool {
	for _, known := range Companies {
		if c == known {
			return true
		}
	}
	return false
}

// Company is a partner company together with its rollup counts, both computed
// by the aggregation pass from the trainee collection.
type Company struct {
	ID   string
	Name CompanyName

	// Rollups.
	TraineeCount  int
	ActiveBatches int
}
