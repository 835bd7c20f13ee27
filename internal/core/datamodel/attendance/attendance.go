package attendance

import "time"

// Attendance rows reference their employee with a cascading foreign key, so
// dropping an employee drops the rows even outside the explicit delete path.
type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;not null;index;constraint:OnDelete:CASCADE"`
	Date       time.Time `gorm:"column:date;not null"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
