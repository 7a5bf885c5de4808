package loader

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/redacademy/academy-backend/internal/app/loader/normalize"
	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// dayColumnRe matches per-day checkbox headers like "Day 1" or "day10".
var dayColumnRe = regexp.MustCompile(`(?i)day\s*(\d+)`)

// buildTenDay turns raw 10-day tracking rows into Attendance10Day records.
// The per-day checkboxes are discovered from the headers rather than assumed
// at fixed positions; completion and checklist status are always recomputed
// from them.
func buildTenDay(rows []notion.Row, trainees []domain.Trainee, batches []domain.Batch) ([]domain.Attendance10Day, PhaseResult) {
	res := PhaseResult{Rows: len(rows)}

	tr := traineeResolver(trainees)
	batchOf := batchIDByTrainee(trainees)
	br := resolve.NewResolver(firstID(batches))
	batchName := make(map[string]string, len(batches))
	for _, b := range batches {
		br.Add(b.ID, b.BatchName)
		batchName[b.ID] = b.BatchName
	}
	traineeName := make(map[string]string, len(trainees))
	for _, t := range trainees {
		traineeName[t.ID] = t.TraineeName
	}

	records := make([]domain.Attendance10Day, 0, len(rows))
	for i, row := range rows {
		name := notion.DisplayName(row.Get("trainee"))
		if name == "" {
			name = nameFromRecord(row.Get("record"))
		}
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

		start, end, ok := periodRange(row)
		if !ok {
			start, end = defaultPeriodStart, defaultPeriodEnd
			res.Defaulted++
		}

		days := dayChecks(row)
		completion := domain.CompletionPercent(days)

		present, absent := 0, 0
		for _, d := range days {
			if d {
				present++
			} else {
				absent++
			}
		}
		if v, ok := normalize.Int(row.Get("present")); ok {
			present = v
		}
		if v, ok := normalize.Int(row.Get("absent")); ok {
			absent = v
		}
		late := 0
		if v, ok := normalize.Int(row.Get("late")); ok {
			late = v
		}

		if exported, ok := normalize.Int(row.Get("completion")); ok && exported != completion {
			res.Mismatch++
		}

		records = append(records, domain.Attendance10Day{
			ID:                 resolve.SyntheticID("att10", i+1),
			Record:             domain.TenDayRecordLabel(traineeName[traineeID], batchName[batchID], start, end),
			PeriodStart:        start,
			PeriodEnd:          end,
			Days:               days,
			CompletionPercent:  completion,
			ChecklistStatus:    domain.ChecklistStatusFor(completion),
			AttendanceAIReport: strings.TrimSpace(row.Get("ai report")),
			TraineeID:          traineeID,
			BatchID:            batchID,
			PresentCount:       present,
			AbsentCount:        absent,
			LateCount:          late,
		})
	}

	res.Built = len(records)
	return records, res
}

// periodRange reads a record's tracking window. The exports carry either
// separate "Period Start"/"Period End" columns or a single "Period" range
// column; the separate columns win when the start one parses, with a
// missing end falling back to the standard window end.
func periodRange(row notion.Row) (start, end time.Time, ok bool) {
	start, ok = normalize.Date(row.Get("period start"))
	if !ok {
		return normalize.DateRange(row.Get("period"))
	}
	end, ok = normalize.Date(row.Get("period end"))
	if !ok {
		end = defaultPeriodEnd
	}
	return start, end, true
}

// dayChecks collects the Day 1 … Day 10 checkbox values for a row. Headers
// outside the window are ignored.
func dayChecks(row notion.Row) [domain.TenDayWindow]bool {
	var days [domain.TenDayWindow]bool
	for i, h := range row.Headers() {
		m := dayColumnRe.FindStringSubmatch(h)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > domain.TenDayWindow {
			continue
		}
		days[n-1] = checked(row.Value(i))
	}
	return days
}

// checked interprets a checkbox cell. Notion exports them as Yes/No.
func checked(cell string) bool {
	cell = strings.TrimSpace(cell)
	return strings.EqualFold(cell, "yes") || strings.EqualFold(cell, "true")
}

// nameFromRecord recovers the trainee name from a
// "{name} - {batch} (…)" record label.
func nameFromRecord(record string) string {
	record = strings.TrimSpace(record)
	i := strings.Index(record, " - ")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(record[:i])
}
