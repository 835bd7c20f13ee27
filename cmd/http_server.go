package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendancePostgres "github.com/frahmantamala/hrms-lite/internal/attendance/postgres"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/dashboard"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	employeePostgres "github.com/frahmantamala/hrms-lite/internal/employee/postgres"
	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/frahmantamala/hrms-lite/internal/transport/rest"
	"github.com/frahmantamala/hrms-lite/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	baseHandler := transport.NewBaseHandler(deps.Logger)

	employeeRepo := employeePostgres.NewEmployeeRepository(deps.DB)
	attendanceRepo := attendancePostgres.NewAttendanceRepository(deps.DB)

	employeeService := employee.NewService(employeeRepo, deps.Logger)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo, deps.Logger)
	dashboardService := dashboard.NewService(employeeRepo, attendanceRepo, deps.Logger)

	employeeHandler := employee.NewHandler(baseHandler, employeeService)
	attendanceHandler := attendance.NewHandler(baseHandler, attendanceService)
	dashboardHandler := dashboard.NewHandler(baseHandler, dashboardService)

	sqlDB, err := deps.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to access database handle: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, deps.Config.Server.Origins(), employeeHandler, attendanceHandler, dashboardHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	router := chi.NewRouter()

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Router: router,
	}, nil
}

// initDB opens the database selected by the connection string: a postgres://
// DSN goes to PostgreSQL, anything else is treated as an embedded SQLite file.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.GetDSN())
	} else {
		dialector = sqlite.Open(cfg.GetDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// The embedded database creates its schema at startup; postgres schemas
	// are managed by the migrate command.
	if !cfg.IsPostgres() {
		if err := db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{}); err != nil {
			return nil, fmt.Errorf("failed to migrate embedded database: %w", err)
		}
	}

	return db, nil
}
