package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/dashboard"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/internal/transport/middleware"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins []string, employeeHandler *employee.Handler, attendanceHandler *attendance.Handler, dashboardHandler *dashboard.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/", healthHandler.rootHandler)

	router.Route("/api", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Employee routes
		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.CreateEmployee)   // POST /api/employees
				er.Get("/", employeeHandler.GetEmployees)      // GET /api/employees
				er.Delete("/{id}", employeeHandler.DeleteEmployee) // DELETE /api/employees/:id
			})
		}

		// Attendance routes
		if attendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Post("/", attendanceHandler.MarkAttendance)          // POST /api/attendance
				ar.Get("/{employee_id}", attendanceHandler.GetAttendance) // GET /api/attendance/:employee_id
			})
		}

		// Dashboard routes
		if dashboardHandler != nil {
			r.Route("/dashboard", func(dr chi.Router) {
				dr.Get("/summary", dashboardHandler.GetSummary)         // GET /api/dashboard/summary
				dr.Get("/employees", dashboardHandler.GetEmployeeStats) // GET /api/dashboard/employees
			})
		}
	})
}
