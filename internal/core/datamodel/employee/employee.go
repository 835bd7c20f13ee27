package employee

import "time"

type Employee struct {
	ID         int64     `gorm:"primaryKey"`
	FullName   string    `gorm:"column:full_name;size:100;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;not null"`
	Department string    `gorm:"column:department;size:100;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
