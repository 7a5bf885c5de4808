package dataset

import (
	"fmt"
	"time"

	"github.com/redacademy/academy-backend/internal/domain"
)

// ListBatches returns the batches matching the filter, in input order.
func (s *Service) ListBatches(filter domain.BatchFilter) []domain.Batch {
	out := make([]domain.Batch, 0, len(s.snap.Batches))
	for _, b := range s.snap.Batches {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !matchSubstring(b.BatchName, filter.Search) {
			continue
		}
		out = append(out, cloneBatch(b))
	}
	return out
}

// GetBatch returns one batch by id.
func (s *Service) GetBatch(id string) (domain.Batch, error) {
	for _, b := range s.snap.Batches {
		if b.ID == id {
			return cloneBatch(b), nil
		}
	}
	return domain.Batch{}, fmt.Errorf("batch %s: %w", id, domain.ErrNotFound)
}

// cloneBatch detaches the member list so callers cannot reach the shared
// snapshot through it.
func cloneBatch(b domain.Batch) domain.Batch {
	b.TraineeIDs = append([]string(nil), b.TraineeIDs...)
	return b
}

// BatchProgress returns how far now sits inside a batch's date range as a
// whole percentage.
func (s *Service) BatchProgress(id string, now time.Time) (int, error) {
	b, err := s.GetBatch(id)
	if err != nil {
		return 0, err
	}
	return domain.BatchProgress(now, b.DateRange), nil
}

// BatchTrainees returns the members of a batch in trainee input order.
func (s *Service) BatchTrainees(batchID string) ([]domain.Trainee, error) {
	b, err := s.GetBatch(batchID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Trainee, len(s.snap.Trainees))
	for _, t := range s.snap.Trainees {
		byID[t.ID] = t
	}

	out := make([]domain.Trainee, 0, len(b.TraineeIDs))
	for _, id := range b.TraineeIDs {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
