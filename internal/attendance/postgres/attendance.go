package postgres

import (
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.RepositoryAPI interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(att *attendanceDatamodel.Attendance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(att).Error
	})
}

// ListForEmployee returns the employee's records inside the range, newest first.
func (r *AttendanceRepository) ListForEmployee(employeeID int64, rng attendance.DateRange) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	query := applyRange(r.db.Where("employee_id = ?", employeeID), rng)
	err := query.Order("date DESC").Find(&records).Error
	return records, err
}

// Count counts attendance rows inside the range, optionally narrowed to one
// status. An empty status counts every row.
func (r *AttendanceRepository) Count(rng attendance.DateRange, status string) (int64, error) {
	var count int64
	query := applyRange(r.db.Model(&attendanceDatamodel.Attendance{}), rng)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// StatsForEmployee derives per-employee counts with a single grouped query
// instead of fetching the rows.
func (r *AttendanceRepository) StatsForEmployee(employeeID int64, rng attendance.DateRange) (attendance.Stats, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	query := applyRange(r.db.Model(&attendanceDatamodel.Attendance{}).Where("employee_id = ?", employeeID), rng)
	err := query.Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error
	if err != nil {
		return attendance.Stats{}, err
	}

	var stats attendance.Stats
	for _, row := range rows {
		switch row.Status {
		case attendance.StatusPresent:
			stats.Present = row.Total
		case attendance.StatusAbsent:
			stats.Absent = row.Total
		}
		stats.Total += row.Total
	}
	return stats, nil
}

func applyRange(query *gorm.DB, rng attendance.DateRange) *gorm.DB {
	if rng.Start != nil {
		query = query.Where("date >= ?", *rng.Start)
	}
	if rng.End != nil {
		query = query.Where("date <= ?", *rng.End)
	}
	return query
}
