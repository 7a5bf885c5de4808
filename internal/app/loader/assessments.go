package loader

import (
	"fmt"
	"strings"

	"github.com/redacademy/academy-backend/internal/app/loader/normalize"
	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// defaultSubScore stands in for an unparsable 0-5 sub-score. The middle of
// the scale keeps a single bad cell from dragging the overall outcome to
// either extreme.
const defaultSubScore = 3

// buildAssessments turns raw assessment rows into Assessment records. The
// three percentage scores and the outcome tier are always recomputed from
// the sub-scores; the export's own formula columns are only consulted to
// count disagreements.
func buildAssessments(rows []notion.Row, trainees []domain.Trainee, batches []domain.Batch) ([]domain.Assessment, PhaseResult) {
	res := PhaseResult{Rows: len(rows)}

	tr := traineeResolver(trainees)
	batchOf := batchIDByTrainee(trainees)
	br := resolve.NewResolver(firstID(batches))
	batchName := make(map[string]string, len(batches))
	for _, b := range batches {
		br.Add(b.ID, b.BatchName)
		batchName[b.ID] = b.BatchName
	}
	companyOf := make(map[string]domain.CompanyName, len(trainees))
	for _, t := range trainees {
		companyOf[t.ID] = t.Company
	}

	assessments := make([]domain.Assessment, 0, len(rows))
	for i, row := range rows {
		name := notion.DisplayName(row.Get("trainee"))
		if name == "" {
			res.Dropped++
			continue
		}

		traineeID, matched := tr.Resolve(name)
		if !matched {
			res.Fallbacks++
		}

		var batchID string
		if ref := notion.DisplayName(row.Get("batch")); ref != "" {
			batchID, matched = br.Resolve(ref)
			if !matched {
				res.Fallbacks++
			}
		} else {
			batchID = batchOf[traineeID]
		}

		mapping := subScore(row.Get("mapping"), &res)
		productKnowledge := subScore(row.Get("product knowledge"), &res)
		presentability := subScore(row.Get("presentability"), &res)
		softSkills := subScore(row.Get("soft skills"), &res)

		attendance := 10
		if v, ok := normalize.Int(row.Get("attendance")); ok {
			attendance = v
		}
		absence := 0
		if v, ok := normalize.Int(row.Get("absence")); ok {
			absence = v
		}

		scores := domain.Scores(mapping, productKnowledge, presentability, softSkills)
		outcome := domain.DetermineOutcome(scores.Overall)
		if exported, ok := normalize.AssessmentOutcome(row.Get("outcome")); ok && exported != outcome {
			res.Mismatch++
		}

		company, known := normalize.Company(notion.DisplayName(row.Get("company")))
		if !known {
			if inherited, ok := companyOf[traineeID]; ok && strings.TrimSpace(row.Get("company")) == "" {
				company = inherited
			} else {
				res.Defaulted++
			}
		}

		title := strings.TrimSpace(row.Get("title"))
		if title == "" {
			title = fmt.Sprintf("Assessment - %s", batchName[batchID])
		}

		assessments = append(assessments, domain.Assessment{
			ID:                 resolve.SyntheticID("assessment", i+1),
			AssessmentTitle:    title,
			Mapping:            mapping,
			ProductKnowledge:   productKnowledge,
			Presentability:     presentability,
			SoftSkills:         softSkills,
			Attendance:         attendance,
			Absence:            absence,
			AssessmentOutcome:  outcome,
			InstructorComment:  strings.TrimSpace(row.Get("comment")),
			AssessmentAIReport: strings.TrimSpace(row.Get("ai report")),
			Company:            company,
			TraineeID:          traineeID,
			BatchID:            batchID,
			TechScorePercent:   scores.Tech,
			SoftScorePercent:   scores.Soft,
			OverallPercent:     scores.Overall,
		})
	}

	res.Built = len(assessments)
	return assessments, res
}

// subScore parses a 0-5 sub-score cell, substituting and counting the
// default for unparsable values.
func subScore(cell string, res *PhaseResult) int {
	v, ok := normalize.Int(cell)
	if !ok {
		res.Defaulted++
		return defaultSubScore
	}
	return domain.Clamp(v, 0, 5)
}
