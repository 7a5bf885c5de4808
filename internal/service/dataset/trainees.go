package dataset

import (
	"fmt"

	"github.com/redacademy/academy-backend/internal/domain"
)

// ListTrainees returns the trainees matching the filter, in input order.
func (s *Service) ListTrainees(filter domain.TraineeFilter) []domain.Trainee {
	out := make([]domain.Trainee, 0, len(s.snap.Trainees))
	for _, t := range s.snap.Trainees {
		if filter.BatchID != nil && t.BatchID != *filter.BatchID {
			continue
		}
		if filter.Company != nil && t.Company != *filter.Company {
			continue
		}
		if !matchSubstring(t.TraineeName, filter.Search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GetTrainee returns one trainee by id.
func (s *Service) GetTrainee(id string) (domain.Trainee, error) {
	for _, t := range s.snap.Trainees {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trainee{}, fmt.Errorf("trainee %s: %w", id, domain.ErrNotFound)
}

// ListCompanies returns every company in first-seen order.
func (s *Service) ListCompanies() []domain.Company {
	out := make([]domain.Company, len(s.snap.Companies))
	copy(out, s.snap.Companies)
	return out
}
