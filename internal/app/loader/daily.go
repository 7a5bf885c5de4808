package loader

import (
	"strings"
	"time"

	"github.com/redacademy/academy-backend/internal/app/loader/normalize"
	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/app/loader/resolve"
	"github.com/redacademy/academy-backend/internal/domain"
)

// buildDaily turns raw daily-log rows into DailyAttendance records. The
// trainee reference comes from the relation column when present and is
// otherwise recovered from the "{date} - {name}" entry label. Lateness is
// computed from the arrival time, only for present trainees.
func buildDaily(rows []notion.Row, trainees []domain.Trainee) ([]domain.DailyAttendance, PhaseResult) {
	res := PhaseResult{Rows: len(rows)}

	r := traineeResolver(trainees)
	batchOf := batchIDByTrainee(trainees)

	records := make([]domain.DailyAttendance, 0, len(rows))
	for i, row := range rows {
		name := notion.DisplayName(row.Get("trainee"))
		if name == "" {
			name = nameFromEntry(row.Get("name"))
		}
		if name == "" {
			res.Dropped++
			continue
		}

		date, ok := normalize.Date(row.Get("date"))
		if !ok {
			date = defaultDailyDate
			res.Defaulted++
		}

		status, matched := normalize.AttendanceStatus(row.Get("status"))
		if !matched {
			res.Defaulted++
		}

		var arrival, departure *time.Time
		if h, m, ok := normalize.TimeOfDay(row.Get("arrival")); ok {
			t := normalize.At(date, h, m)
			arrival = &t
		}
		if h, m, ok := normalize.TimeOfDay(row.Get("departure")); ok {
			t := normalize.At(date, h, m)
			departure = &t
		}

		var minutesLate int
		var wasLate bool
		if status == domain.AttendancePresent {
			minutesLate = domain.MinutesLate(arrival)
			wasLate = domain.WasLate(arrival)
		}
		if exported, ok := normalize.Int(row.Get("minutes late")); ok && exported != minutesLate {
			res.Mismatch++
		}

		traineeID, matched := r.Resolve(name)
		if !matched {
			res.Fallbacks++
		}

		records = append(records, domain.DailyAttendance{
			ID:            resolve.SyntheticID("daily", i+1),
			EntryID:       domain.EntryID(date, name),
			Date:          date,
			ArrivalTime:   arrival,
			DepartureTime: departure,
			Status:        status,
			TraineeID:     traineeID,
			BatchID:       batchOf[traineeID],
			MinutesLate:   minutesLate,
			WasLate:       wasLate,
		})
	}

	res.Built = len(records)
	return records, res
}

// nameFromEntry recovers the trainee name from a "{date} - {name}" entry
// label. The name is everything after the last " - " so trainee names
// containing a dash survive.
func nameFromEntry(entry string) string {
	entry = strings.TrimSpace(entry)
	i := strings.LastIndex(entry, " - ")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(entry[i+len(" - "):])
}
