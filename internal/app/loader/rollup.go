package loader

import (
	"math"
	"sort"
	"time"

	"github.com/redacademy/academy-backend/internal/domain"
)

// Aggregate is the phase-two rollup pass. It scans the complete phase-one
// collections and returns a new snapshot with every derived counter filled
// in. The inputs are never mutated; running Aggregate twice over the same
// collections yields identical snapshots.
func Aggregate(
	batches []domain.Batch,
	trainees []domain.Trainee,
	companies []domain.Company,
	daily []domain.DailyAttendance,
	tenDay []domain.Attendance10Day,
	assessments []domain.Assessment,
) *domain.Snapshot {
	outTrainees := make([]domain.Trainee, len(trainees))
	copy(outTrainees, trainees)

	// Trainee rollups: daily log counters plus the trainee's most recent
	// 10-day record.
	byTrainee := make(map[string]*domain.Trainee, len(outTrainees))
	for i := range outTrainees {
		byTrainee[outTrainees[i].ID] = &outTrainees[i]
	}
	for _, d := range daily {
		t, ok := byTrainee[d.TraineeID]
		if !ok {
			continue
		}
		switch d.Status {
		case domain.AttendancePresent:
			t.PresentDaily++
		case domain.AttendanceAbsent:
			t.AbsentDaily++
		}
		if d.WasLate {
			t.LatesDaily++
		}
	}
	// The trainee's most recent record by period end wins; a tie goes to
	// the later row so re-exported duplicates keep the last value.
	latestEnd := make(map[string]time.Time, len(tenDay))
	for _, r := range tenDay {
		t, ok := byTrainee[r.TraineeID]
		if !ok {
			continue
		}
		if end, seen := latestEnd[r.TraineeID]; seen && r.PeriodEnd.Before(end) {
			continue
		}
		latestEnd[r.TraineeID] = r.PeriodEnd
		t.Present10Day = r.PresentCount
		t.Absent10Day = r.AbsentCount
		t.Late10Day = r.LateCount
		t.LatestCompletion10Day = r.CompletionPercent
	}

	// Batch rollups: membership in trainee input order, then totals over the
	// members' 10-day records.
	outBatches := make([]domain.Batch, len(batches))
	copy(outBatches, batches)
	byBatch := make(map[string]*domain.Batch, len(outBatches))
	for i := range outBatches {
		outBatches[i].TraineeIDs = nil
		byBatch[outBatches[i].ID] = &outBatches[i]
	}
	for _, t := range outTrainees {
		if b, ok := byBatch[t.BatchID]; ok {
			b.TraineeIDs = append(b.TraineeIDs, t.ID)
		}
	}
	// Totals are grouped by the owning trainee's batch membership, not the
	// record's own batch field, so membership and sums always agree.
	for _, r := range tenDay {
		t, ok := byTrainee[r.TraineeID]
		if !ok {
			continue
		}
		if b, ok := byBatch[t.BatchID]; ok {
			b.PresentTotal10Day += r.PresentCount
			b.AbsentTotal10Day += r.AbsentCount
			b.LateTotal10Day += r.LateCount
		}
	}
	for i := range outBatches {
		b := &outBatches[i]
		if len(b.TraineeIDs) == 0 {
			continue
		}
		sum := 0
		for _, id := range b.TraineeIDs {
			sum += byTrainee[id].LatestCompletion10Day
		}
		b.AvgCompletion10Day = int(math.Round(float64(sum) / float64(len(b.TraineeIDs))))
	}

	outCompanies := make([]domain.Company, len(companies))
	copy(outCompanies, companies)

	outDaily := make([]domain.DailyAttendance, len(daily))
	copy(outDaily, daily)
	outTenDay := make([]domain.Attendance10Day, len(tenDay))
	copy(outTenDay, tenDay)
	outAssessments := make([]domain.Assessment, len(assessments))
	copy(outAssessments, assessments)

	return &domain.Snapshot{
		Batches:         outBatches,
		Trainees:        outTrainees,
		Companies:       outCompanies,
		DailyAttendance: outDaily,
		Attendance10Day: outTenDay,
		Assessments:     outAssessments,
		Stats:           dashboardStats(outBatches, outTrainees, outDaily, outAssessments),
	}
}

// dashboardStats computes the dashboard-wide aggregates. The "today" counters
// cover the latest date that appears in the daily log.
func dashboardStats(
	batches []domain.Batch,
	trainees []domain.Trainee,
	daily []domain.DailyAttendance,
	assessments []domain.Assessment,
) domain.DashboardStats {
	stats := domain.DashboardStats{TotalTrainees: len(trainees)}

	for _, b := range batches {
		switch b.Status {
		case domain.BatchStatusActive:
			stats.ActiveBatches++
		case domain.BatchStatusPlanning:
			stats.PlanningBatches++
		case domain.BatchStatusCompleted:
			stats.CompletedBatches++
		}
	}

	var reportingDay time.Time
	for _, d := range daily {
		if d.Date.After(reportingDay) {
			reportingDay = d.Date
		}
	}
	total := 0
	for _, d := range daily {
		if !d.Date.Equal(reportingDay) {
			continue
		}
		total++
		switch d.Status {
		case domain.AttendancePresent:
			stats.TodayPresent++
		case domain.AttendanceAbsent:
			stats.TodayAbsent++
		case domain.AttendanceTourDay:
			stats.TodayOnTour++
		}
		if d.WasLate {
			stats.TodayLate++
		}
	}
	stats.AttendancePercent = domain.AttendancePercent(stats.TodayPresent, total)

	counts := make(map[domain.AssessmentOutcome]int, len(domain.AllOutcomes))
	for _, a := range assessments {
		counts[a.AssessmentOutcome]++
	}
	stats.OutcomeDistribution = make([]domain.OutcomeCount, 0, len(domain.AllOutcomes))
	for _, o := range domain.AllOutcomes {
		stats.OutcomeDistribution = append(stats.OutcomeDistribution, domain.OutcomeCount{
			Outcome: o,
			Count:   counts[o],
		})
	}

	stats.TopCompanies = topCompanies(trainees)
	return stats
}

// topCompaniesLimit bounds the dashboard leaderboard.
const topCompaniesLimit = 10

// topCompanies ranks companies by trainee count, ties kept in first-seen
// order so the leaderboard is stable across reruns.
func topCompanies(trainees []domain.Trainee) []domain.CompanyLeader {
	order := make([]domain.CompanyName, 0)
	counts := make(map[domain.CompanyName]int)
	for _, t := range trainees {
		if _, ok := counts[t.Company]; !ok {
			order = append(order, t.Company)
		}
		counts[t.Company]++
	}

	leaders := make([]domain.CompanyLeader, 0, len(order))
	for _, name := range order {
		leaders = append(leaders, domain.CompanyLeader{Name: name, Trainees: counts[name]})
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Trainees > leaders[j].Trainees
	})
	if len(leaders) > topCompaniesLimit {
		leaders = leaders[:topCompaniesLimit]
	}
	return leaders
}
