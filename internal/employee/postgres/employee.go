package postgres

import (
	"errors"

	"github.com/frahmantamala/hrms-lite/internal"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.RepositoryAPI interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee. A unique-key violation on the email column
// comes back as a duplicate-email conflict instead of a raw driver error.
func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(emp).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.NewDuplicateEmailError(emp.Email)
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

// Delete removes the employee and its attendance rows in one transaction. The
// attendance delete is explicit rather than relying on the foreign key, so the
// cascade holds even when the embedded driver runs without FK enforcement.
func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&attendanceDatamodel.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
	})
}

func (r *EmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).Count(&count).Error
	return count, err
}
