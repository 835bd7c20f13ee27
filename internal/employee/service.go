package employee

import (
	"log/slog"

	"github.com/frahmantamala/hrms-lite/internal"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	Create(emp *employeeDatamodel.Employee) error
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	Delete(id int64) error
	Count() (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEmployee(dto *CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("invalid create employee request", "error", err)
		return nil, err
	}

	dataEmployee := ToDataModel(NewEmployee(dto.FullName, dto.Email, dto.Department))
	if err := s.repo.Create(dataEmployee); err != nil {
		s.logger.Error("failed to create employee", "email", dto.Email, "error", err)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", dataEmployee.ID, "department", dataEmployee.Department)
	return FromDataModel(dataEmployee), nil
}

func (s *Service) GetAllEmployees() ([]*Employee, error) {
	dataEmployees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get employees from repository", "error", err)
		return nil, err
	}

	employees := make([]*Employee, 0, len(dataEmployees))
	for _, dataEmployee := range dataEmployees {
		employees = append(employees, FromDataModel(dataEmployee))
	}
	return employees, nil
}

// DeleteEmployee removes the employee and all of its attendance rows in one
// transaction. Missing ids surface as a not-found error.
func (s *Service) DeleteEmployee(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to look up employee before delete", "employee_id", id, "error", err)
		return err
	}
	if existing == nil {
		return internal.NewEmployeeNotFoundError(id)
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "employee_id", id, "error", err)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
