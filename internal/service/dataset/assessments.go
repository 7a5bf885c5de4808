package dataset

import "github.com/redacademy/academy-backend/internal/domain"

// ListAssessments returns the assessments matching the filter, in input
// order.
func (s *Service) ListAssessments(filter domain.AssessmentFilter) []domain.Assessment {
	out := make([]domain.Assessment, 0, len(s.snap.Assessments))
	for _, a := range s.snap.Assessments {
		if filter.BatchID != nil && a.BatchID != *filter.BatchID {
			continue
		}
		if filter.TraineeID != nil && a.TraineeID != *filter.TraineeID {
			continue
		}
		if filter.Company != nil && a.Company != *filter.Company {
			continue
		}
		if filter.Outcome != nil && a.AssessmentOutcome != *filter.Outcome {
			continue
		}
		out = append(out, a)
	}
	return out
}
