package dataset

import (
	"log/slog"
	"strings"

	"github.com/redacademy/academy-backend/internal/domain"
)

// Service answers read-only queries over a finished snapshot. The snapshot
// is immutable; every list operation returns a fresh slice so callers can
// sort or rework results without touching the shared data.
type Service struct {
	snap *domain.Snapshot
	log  *slog.Logger
}

// NewService creates a new dataset service over a snapshot.
func NewService(log *slog.Logger, snap *domain.Snapshot) *Service {
	return &Service{
		snap: snap,
		log:  log.With("service", "dataset"),
	}
}

// Stats returns the dashboard-wide aggregates. The distribution and
// leaderboard slices are detached copies.
func (s *Service) Stats() domain.DashboardStats {
	st := s.snap.Stats
	st.OutcomeDistribution = append([]domain.OutcomeCount(nil), st.OutcomeDistribution...)
	st.TopCompanies = append([]domain.CompanyLeader(nil), st.TopCompanies...)
	return st
}

// matchSubstring reports whether text contains the (case-insensitive)
// search needle; a nil needle matches everything.
func matchSubstring(text string, search *string) bool {
	if search == nil {
		return true
	}
	return containsFold(text, *search)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
