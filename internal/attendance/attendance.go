package attendance

import (
	"time"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attendance status constants
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

func IsValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}

func NewAttendance(employeeID int64, date time.Time, status string) *Attendance {
	return &Attendance{
		EmployeeID: employeeID,
		Date:       StripOffset(date),
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

// StripOffset normalizes a timestamp to its timezone-naive form: the wall
// clock fields are kept and the offset is discarded.
func StripOffset(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// StartOfDay returns midnight on the given calendar day.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999999 on the given calendar day; stored
// timestamps carry microsecond precision, so this is the last representable
// instant of the day.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999000, time.UTC)
}

// DateRange holds optional inclusive datetime bounds derived from calendar
// dates. A nil bound means the side is unfiltered.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// RangeFromDates widens calendar-date bounds to datetime bounds: the start
// date becomes its midnight and the end date its last microsecond, so both
// boundary days are fully included.
func RangeFromDates(startDate, endDate *time.Time) DateRange {
	var rng DateRange
	if startDate != nil {
		start := StartOfDay(*startDate)
		rng.Start = &start
	}
	if endDate != nil {
		end := EndOfDay(*endDate)
		rng.End = &end
	}
	return rng
}

func ToDataModel(a *Attendance) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}
