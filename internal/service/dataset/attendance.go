package dataset

import (
	"time"

	"github.com/redacademy/academy-backend/internal/domain"
)

// ListDailyAttendance returns the daily log records matching the filter,
// in input order.
func (s *Service) ListDailyAttendance(filter domain.AttendanceFilter) []domain.DailyAttendance {
	out := make([]domain.DailyAttendance, 0, len(s.snap.DailyAttendance))
	for _, d := range s.snap.DailyAttendance {
		if filter.BatchID != nil && d.BatchID != *filter.BatchID {
			continue
		}
		if filter.TraineeID != nil && d.TraineeID != *filter.TraineeID {
			continue
		}
		if filter.Status != nil && d.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil && d.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && d.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, cloneDaily(d))
	}
	return out
}

// cloneDaily detaches the timestamp pointers so callers cannot reach the
// shared snapshot through them.
func cloneDaily(d domain.DailyAttendance) domain.DailyAttendance {
	d.ArrivalTime = cloneTime(d.ArrivalTime)
	d.DepartureTime = cloneTime(d.DepartureTime)
	return d
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// ListTenDayAttendance returns the 10-day tracking records for a trainee,
// or all of them when traineeID is empty.
func (s *Service) ListTenDayAttendance(traineeID string) []domain.Attendance10Day {
	out := make([]domain.Attendance10Day, 0, len(s.snap.Attendance10Day))
	for _, r := range s.snap.Attendance10Day {
		if traineeID != "" && r.TraineeID != traineeID {
			continue
		}
		out = append(out, r)
	}
	return out
}
