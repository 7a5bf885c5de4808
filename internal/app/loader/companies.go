package loader

import (
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// buildCompanies derives the company collection from the trainee records.
// A company entity is created for each distinct company name in first-seen
// order; the trainee and batch counters are filled here so downstream
// consumers never recount them.
func buildCompanies(trainees []domain.Trainee) ([]domain.Company, PhaseResult) {
	res := PhaseResult{Rows: len(trainees)}

	type tally struct {
		trainees int
		batches  map[string]struct{}
	}

	order := make([]domain.CompanyName, 0)
	byName := make(map[domain.CompanyName]*tally)

	for _, t := range trainees {
		c, ok := byName[t.Company]
		if !ok {
			c = &tally{batches: make(map[string]struct{})}
			byName[t.Company] = c
			order = append(order, t.Company)
		}
		c.trainees++
		if t.BatchID != "" {
			c.batches[t.BatchID] = struct{}{}
		}
	}

	companies := make([]domain.Company, 0, len(order))
	for i, name := range order {
		t := byName[name]
		companies = append(companies, domain.Company{
			ID:            resolve.SyntheticID("company", i+1),
			Name:          name,
			TraineeCount:  t.trainees,
			ActiveBatches: len(t.batches),
		})
	}

	res.Built = len(companies)
	return companies, res
}
