package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redacademy/academy-backend/internal/domain"
)

func TestAggregateLatestTenDayRecord(t *testing.T) {
	oct := func(day int) time.Time {
		return time.Date(2025, time.October, day, 0, 0, 0, 0, time.UTC)
	}

	batches := []domain.Batch{
		{ID: "batch-0001", BatchName: "Batch 27", Status: domain.BatchStatusActive},
	}
	trainees := []domain.Trainee{
		{ID: "trainee-0001", TraineeName: "Mohamed Hany", Company: "RED", BatchID: "batch-0001"},
	}

	// The newer window is exported first; the older one follows it.
	tenDay := []domain.Attendance10Day{
		{ID: "att10-0001", TraineeID: "trainee-0001", BatchID: "batch-0001",
			PeriodStart: oct(13), PeriodEnd: oct(24),
			PresentCount: 9, AbsentCount: 1, LateCount: 0, CompletionPercent: 90},
		{ID: "att10-0002", TraineeID: "trainee-0001", BatchID: "batch-0001",
			PeriodStart: oct(1), PeriodEnd: oct(10),
			PresentCount: 2, AbsentCount: 8, LateCount: 3, CompletionPercent: 20},
	}

	snap := Aggregate(batches, trainees, nil, nil, tenDay, nil)

	// Per-trainee counters come from the latest period, not the last row.
	mohamed := snap.Trainees[0]
	assert.Equal(t, 9, mohamed.Present10Day)
	assert.Equal(t, 1, mohamed.Absent10Day)
	assert.Equal(t, 0, mohamed.Late10Day)
	assert.Equal(t, 90, mohamed.LatestCompletion10Day)

	// Batch totals still sum every record.
	b := snap.Batches[0]
	assert.Equal(t, 11, b.PresentTotal10Day)
	assert.Equal(t, 9, b.AbsentTotal10Day)
	assert.Equal(t, 3, b.LateTotal10Day)
	assert.Equal(t, 90, b.AvgCompletion10Day)
}

func TestAggregateTenDayTotalsFollowMembership(t *testing.T) {
	batches := []domain.Batch{
		{ID: "batch-0001", BatchName: "Batch 27"},
		{ID: "batch-0002", BatchName: "Batch 28"},
	}
	trainees := []domain.Trainee{
		{ID: "trainee-0001", TraineeName: "Mohamed Hany", BatchID: "batch-0001"},
	}

	// The record's own batch column disagreed with the trainee's membership.
	tenDay := []domain.Attendance10Day{
		{ID: "att10-0001", TraineeID: "trainee-0001", BatchID: "batch-0002",
			PresentCount: 7, AbsentCount: 3, LateCount: 1, CompletionPercent: 70},
	}

	snap := Aggregate(batches, trainees, nil, nil, tenDay, nil)

	require.Equal(t, []string{"trainee-0001"}, snap.Batches[0].TraineeIDs)
	assert.Equal(t, 7, snap.Batches[0].PresentTotal10Day)
	assert.Equal(t, 0, snap.Batches[1].PresentTotal10Day)
}
