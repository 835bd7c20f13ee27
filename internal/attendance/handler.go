package attendance

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	MarkAttendance(dto *MarkAttendanceDTO) (*Attendance, error)
	ListForEmployee(employeeID int64, startDate, endDate *time.Time) ([]*Attendance, error)
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

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkAttendance: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	att, err := h.Service.MarkAttendance(&dto)
	if err != nil {
		h.Logger.Error("MarkAttendance: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, att)
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "employee_id")
	employeeID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetAttendance: invalid employee ID", "employee_id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	startDate, err := ParseQueryDate(r.URL.Query().Get("start_date"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	endDate, err := ParseQueryDate(r.URL.Query().Get("end_date"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	records, err := h.Service.ListForEmployee(employeeID, startDate, endDate)
	if err != nil {
		h.Logger.Error("GetAttendance: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
