package dashboard

import (
	"net/http"
	"time"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/transport"
)

type ServiceAPI interface {
	GetSummary(startDate, endDate *time.Time) (*Summary, error)
	GetEmployeeStats(statusFilter string, startDate, endDate *time.Time) ([]EmployeeStats, error)
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

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := dateFilters(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	summary, err := h.Service.GetSummary(startDate, endDate)
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := dateFilters(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	stats, err := h.Service.GetEmployeeStats(r.URL.Query().Get("status"), startDate, endDate)
	if err != nil {
		h.Logger.Error("GetEmployeeStats: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

func dateFilters(r *http.Request) (*time.Time, *time.Time, error) {
	startDate, err := attendance.ParseQueryDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, nil, err
	}
	endDate, err := attendance.ParseQueryDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, nil, err
	}
	return startDate, endDate, nil
}
