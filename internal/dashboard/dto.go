package dashboard

// Summary aggregates roster size and attendance counts under the active
// date filters. The employee count is never filtered.
type Summary struct {
	TotalEmployees         int64   `json:"total_employees"`
	TotalAttendanceRecords int64   `json:"total_attendance_records"`
	PresentCount           int64   `json:"present_count"`
	AbsentCount            int64   `json:"absent_count"`
	AttendanceRate         float64 `json:"attendance_rate"`
}

// EmployeeStats is one row of the per-employee rollup.
type EmployeeStats struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	PresentCount int64  `json:"present_count"`
	AbsentCount  int64  `json:"absent_count"`
	TotalRecords int64  `json:"total_records"`
}
