package employee

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateEmployee(dto *CreateEmployeeDTO) (*Employee, error)
	GetAllEmployees() ([]*Employee, error)
	DeleteEmployee(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.CreateEmployee(&dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "email", dto.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAllEmployees()
	if err != nil {
		h.Logger.Error("GetEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteEmployee: invalid employee ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.Service.DeleteEmployee(id); err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteEmployeeResponse{
		Message: fmt.Sprintf("Employee %d deleted successfully", id),
	})
}
