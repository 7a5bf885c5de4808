package loader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redacademy/academy-backend/internal/app/loader/normalize"
	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// buildTrainees turns raw trainee rows into Trainee records. The batch
// reference is resolved against the already-built batch collection; an
// unmatched reference falls back to the first batch.
func buildTrainees(rows []notion.Row, batches []domain.Batch) ([]domain.Trainee, PhaseResult) {
	res := PhaseResult{Rows: len(rows)}

	r := resolve.NewResolver(firstID(batches))
	for _, b := range batches {
		r.Add(b.ID, b.BatchName)
	}

	trainees := make([]domain.Trainee, 0, len(rows))
	for i, row := range rows {
		name := notion.DisplayName(row.Get("trainee name"))
		if name == "" {
			res.Dropped++
			continue
		}

		batchID, matched := r.Resolve(notion.DisplayName(row.Get("batch")))
		if !matched {
			res.Fallbacks++
		}

		company, known := normalize.Company(notion.DisplayName(row.Get("company")))
		if !known {
			res.Defaulted++
		}

		trainees = append(trainees, domain.Trainee{
			ID:          resolve.SyntheticID("trainee", i+1),
			TraineeName: name,
			Company:     company,
			Email:       slugify(name) + "@email.com",
			Avatar:      avatarURL(name),
			BatchID:     batchID,
		})
	}

	res.Built = len(trainees)
	return trainees, res
}

// firstTraineeID returns the sentinel id for a trainee collection.
func firstTraineeID(trainees []domain.Trainee) string {
	if len(trainees) == 0 {
		return ""
	}
	return trainees[0].ID
}

// traineeResolver builds the shared trainee-name resolver used by the
// attendance and assessment passes.
func traineeResolver(trainees []domain.Trainee) *resolve.Resolver {
	r := resolve.NewResolver(firstTraineeID(trainees))
	for _, t := range trainees {
		r.Add(t.ID, t.TraineeName)
	}
	return r
}

// batchIDByTrainee indexes each trainee's resolved batch. Child records
// inherit their batch foreign key from the trainee they attach to, which
// keeps the trainee→batch edge and the child→batch edge consistent.
func batchIDByTrainee(trainees []domain.Trainee) map[string]string {
	m := make(map[string]string, len(trainees))
	for _, t := range trainees {
		m[t.ID] = t.BatchID
	}
	return m
}

// slugify reduces a name to a lowercase hyphenated slug for the synthesized
// contact email.
func slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range strings.ToLower(text) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// avatarURL synthesizes a deterministic initials avatar for a trainee.
func avatarURL(name string) string {
	return fmt.Sprintf(
		"https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=dc2626",
		url.QueryEscape(name),
	)
}
