package dashboard

import (
	"log/slog"
	"math"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// EmployeeRoster is the slice of the employee repository the dashboard reads.
type EmployeeRoster interface {
	GetAll() ([]*employeeDatamodel.Employee, error)
	Count() (int64, error)
}

// AttendanceCounter is the slice of the attendance repository the dashboard reads.
type AttendanceCounter interface {
	Count(rng attendance.DateRange, status string) (int64, error)
	StatsForEmployee(employeeID int64, rng attendance.DateRange) (attendance.Stats, error)
}

type Service struct {
	employees EmployeeRoster
	records   AttendanceCounter
	logger    *slog.Logger
}

func NewService(employees EmployeeRoster, records AttendanceCounter, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		records:   records,
		logger:    logger,
	}
}

// GetSummary computes the dashboard counters. The date filters narrow the
// attendance counts only; the employee count always covers the whole roster.
func (s *Service) GetSummary(startDate, endDate *time.Time) (*Summary, error) {
	totalEmployees, err := s.employees.Count()
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, err
	}

	rng := attendance.RangeFromDates(startDate, endDate)

	totalRecords, err := s.records.Count(rng, "")
	if err != nil {
		s.logger.Error("failed to count attendance records", "error", err)
		return nil, err
	}
	presentCount, err := s.records.Count(rng, attendance.StatusPresent)
	if err != nil {
		s.logger.Error("failed to count present records", "error", err)
		return nil, err
	}
	absentCount, err := s.records.Count(rng, attendance.StatusAbsent)
	if err != nil {
		s.logger.Error("failed to count absent records", "error", err)
		return nil, err
	}

	return &Summary{
		TotalEmployees:         totalEmployees,
		TotalAttendanceRecords: totalRecords,
		PresentCount:           presentCount,
		AbsentCount:            absentCount,
		AttendanceRate:         attendanceRate(presentCount, totalRecords),
	}, nil
}

// GetEmployeeStats builds the per-employee rollup in roster (primary key)
// order. With a status filter, employees whose count for that status is zero
// under the date filters are left out of the result.
func (s *Service) GetEmployeeStats(statusFilter string, startDate, endDate *time.Time) ([]EmployeeStats, error) {
	if statusFilter != "" && !attendance.IsValidStatus(statusFilter) {
		return nil, internal.NewValidationError("status must be either 'Present' or 'Absent'", internal.ErrCodeInvalidStatus)
	}

	employees, err := s.employees.GetAll()
	if err != nil {
		s.logger.Error("failed to get employees for rollup", "error", err)
		return nil, err
	}

	rng := attendance.RangeFromDates(startDate, endDate)

	result := make([]EmployeeStats, 0, len(employees))
	for _, emp := range employees {
		stats, err := s.records.StatsForEmployee(emp.ID, rng)
		if err != nil {
			s.logger.Error("failed to compute attendance stats", "employee_id", emp.ID, "error", err)
			return nil, err
		}

		if statusFilter == attendance.StatusPresent && stats.Present == 0 {
			continue
		}
		if statusFilter == attendance.StatusAbsent && stats.Absent == 0 {
			continue
		}

		result = append(result, EmployeeStats{
			ID:           emp.ID,
			FullName:     emp.FullName,
			Email:        emp.Email,
			Department:   emp.Department,
			PresentCount: stats.Present,
			AbsentCount:  stats.Absent,
			TotalRecords: stats.Total,
		})
	}

	return result, nil
}

func attendanceRate(present, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	rate := float64(present) / float64(total) * 100
	return math.Round(rate*100) / 100
}
