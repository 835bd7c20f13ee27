package employee

import (
	"net/mail"
	"strings"

	"github.com/frahmantamala/hrms-lite/internal"
)

// CreateEmployeeDTO represents the request payload for creating an employee
type CreateEmployeeDTO struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=1,max=100"`
}

// Validate validates the CreateEmployeeDTO
func (dto CreateEmployeeDTO) Validate() error {
	if strings.TrimSpace(dto.FullName) == "" {
		return internal.NewValidationError("full name is required", internal.ErrCodeInvalidFullName)
	}
	if len(dto.FullName) > 100 {
		return internal.NewValidationError("full name must be at most 100 characters", internal.ErrCodeInvalidFullName)
	}
	if dto.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeInvalidEmail)
	}
	if _, err := mail.ParseAddress(dto.Email); err != nil {
		return internal.NewValidationError("email is not a valid address", internal.ErrCodeInvalidEmail)
	}
	if strings.TrimSpace(dto.Department) == "" {
		return internal.NewValidationError("department is required", internal.ErrCodeInvalidDept)
	}
	if len(dto.Department) > 100 {
		return internal.NewValidationError("department must be at most 100 characters", internal.ErrCodeInvalidDept)
	}
	return nil
}

// DeleteEmployeeResponse is the success body for a delete.
type DeleteEmployeeResponse struct {
	Message string `json:"message"`
}
