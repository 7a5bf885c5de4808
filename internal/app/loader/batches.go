package loader

import (
	"log/slog"
	"strings"

	"github.com/redacademy/academy-backend/internal/app/loader/normalize"
	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// buildBatches turns raw batch rows into Batch records. Rows without a batch
// name are dropped; they still consume a sequence number so ids stay stable
// row-for-row against the source file.
//
// The second return holds each batch's declared roster size, read from the
// export's multi-value trainees column. Membership itself is resolved from
// the trainee rows later; the declared sizes only feed the post-aggregation
// cross-check. The map is nil when the export has no such column.
func buildBatches(rows []notion.Row) ([]domain.Batch, map[string]int, PhaseResult) {
	res := PhaseResult{Rows: len(rows)}
	batches := make([]domain.Batch, 0, len(rows))

	var declared map[string]int
	if len(rows) > 0 && hasRosterColumn(rows[0]) {
		declared = make(map[string]int, len(rows))
	}

	for i, row := range rows {
		name := notion.DisplayName(row.Get("batch name"))
		if name == "" {
			res.Dropped++
			continue
		}

		rawStatus := row.Get("status")
		status, hit := normalize.BatchStatus(rawStatus)
		if !hit && strings.TrimSpace(rawStatus) != "" {
			res.Defaulted++
		}

		start, end, ok := normalize.DateRange(row.Get("date range"))
		if !ok {
			start, end = defaultBatchStart, defaultBatchEnd
			res.Defaulted++
		}

		id := resolve.SyntheticID("batch", i+1)
		if declared != nil {
			declared[id] = len(notion.DisplayNames(row.Get("trainees")))
		}

		batches = append(batches, domain.Batch{
			ID:        id,
			BatchName: batchDisplayName(name),
			Status:    status,
			DateRange: domain.DateRange{Start: start, End: end},
		})
	}

	res.Built = len(batches)
	return batches, declared, res
}

// hasRosterColumn reports whether the export carries a declared trainees
// column. Rows share one header table, so checking any row suffices.
func hasRosterColumn(row notion.Row) bool {
	for _, h := range row.Headers() {
		if strings.Contains(strings.ToLower(h), "trainees") {
			return true
		}
	}
	return false
}

// rosterMismatches compares each batch's declared roster size against its
// resolved membership and reports how many disagree.
func rosterMismatches(log *slog.Logger, declared map[string]int, batches []domain.Batch) int {
	n := 0
	for _, b := range batches {
		want, ok := declared[b.ID]
		if !ok {
			continue
		}
		if want != len(b.TraineeIDs) {
			n++
			log.Warn("declared roster disagrees with resolved membership",
				slog.String("batch_id", b.ID),
				slog.Int("declared", want),
				slog.Int("resolved", len(b.TraineeIDs)),
			)
		}
	}
	return n
}

// batchDisplayName prefixes bare batch labels like "27" with "Batch". Labels
// already carrying the word are kept as-is.
func batchDisplayName(name string) string {
	if strings.HasPrefix(strings.ToLower(name), "batch") {
		return name
	}
	return "Batch " + name
}

// firstID returns the sentinel id for a batch collection: the first built
// batch, or "" for an empty collection (which fails the load upstream).
func firstID(batches []domain.Batch) string {
	if len(batches) == 0 {
		return ""
	}
	return batches[0].ID
}
