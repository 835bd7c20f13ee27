package attendance

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// Stats holds per-employee attendance counts under a date range.
type Stats struct {
	Present int64
	Absent  int64
	Total   int64
}

type RepositoryAPI interface {
	Create(att *attendanceDatamodel.Attendance) error
	ListForEmployee(employeeID int64, rng DateRange) ([]*attendanceDatamodel.Attendance, error)
	Count(rng DateRange, status string) (int64, error)
	StatsForEmployee(employeeID int64, rng DateRange) (Stats, error)
}

// EmployeeDirectory is the slice of the employee repository attendance needs
// for referential-integrity checks.
type EmployeeDirectory interface {
	GetByID(id int64) (*employeeDatamodel.Employee, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

// MarkAttendance records attendance for an existing employee. The submitted
// date is normalized to its timezone-naive form before storage.
func (s *Service) MarkAttendance(dto *MarkAttendanceDTO) (*Attendance, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("invalid mark attendance request", "error", err)
		return nil, err
	}

	emp, err := s.employees.GetByID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to look up employee for attendance", "employee_id", dto.EmployeeID, "error", err)
		return nil, err
	}
	if emp == nil {
		return nil, internal.NewEmployeeNotFoundError(dto.EmployeeID)
	}

	date, err := dto.ParseDate()
	if err != nil {
		return nil, internal.NewValidationError("date must be an ISO timestamp or YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	dataAttendance := ToDataModel(NewAttendance(dto.EmployeeID, date, dto.Status))
	if err := s.repo.Create(dataAttendance); err != nil {
		s.logger.Error("failed to create attendance", "employee_id", dto.EmployeeID, "error", err)
		return nil, err
	}

	s.logger.Info("attendance marked", "attendance_id", dataAttendance.ID, "employee_id", dto.EmployeeID, "status", dto.Status)
	return FromDataModel(dataAttendance), nil
}

// ListForEmployee returns the employee's attendance records under the given
// inclusive date filters, newest first.
func (s *Service) ListForEmployee(employeeID int64, startDate, endDate *time.Time) ([]*Attendance, error) {
	emp, err := s.employees.GetByID(employeeID)
	if err != nil {
		s.logger.Error("failed to look up employee for attendance list", "employee_id", employeeID, "error", err)
		return nil, err
	}
	if emp == nil {
		return nil, internal.NewEmployeeNotFoundError(employeeID)
	}

	records, err := s.repo.ListForEmployee(employeeID, RangeFromDates(startDate, endDate))
	if err != nil {
		s.logger.Error("failed to list attendance", "employee_id", employeeID, "error", err)
		return nil, err
	}

	result := make([]*Attendance, 0, len(records))
	for _, record := range records {
		result = append(result, FromDataModel(record))
	}
	return result, nil
}
