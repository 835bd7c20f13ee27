package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

type Employee struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewEmployee(fullName, email, department string) *Employee {
	return &Employee{
		FullName:   fullName,
		Email:      email,
		Department: department,
		CreatedAt:  time.Now(),
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}
