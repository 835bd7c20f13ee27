package attendance

import (
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
)

// attendance dates arrive either as full timestamps (with or without an
// offset) or as bare calendar dates
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// MarkAttendanceDTO represents the request payload for marking attendance
type MarkAttendanceDTO struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// Validate validates the MarkAttendanceDTO
func (dto MarkAttendanceDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	if _, err := dto.ParseDate(); err != nil {
		return internal.NewValidationError("date must be an ISO timestamp or YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if !IsValidStatus(dto.Status) {
		return internal.NewValidationError("status must be either 'Present' or 'Absent'", internal.ErrCodeInvalidStatus)
	}
	return nil
}

// ParseDate parses the submitted date, trying timestamp layouts before the
// bare calendar-date form. Offsets survive parsing here; normalization to the
// naive stored form happens when the record is built.
func (dto MarkAttendanceDTO) ParseDate() (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, dto.Date)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ParseQueryDate parses a start_date/end_date query parameter (YYYY-MM-DD).
func ParseQueryDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, internal.NewValidationError("date filters must use YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return &t, nil
}
