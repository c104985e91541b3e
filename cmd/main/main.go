package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/hrms/internal/config"
	"github.com/UnknownOlympus/hrms/internal/httpapi"
	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/repository"
	"github.com/UnknownOlympus/hrms/internal/server"
	"github.com/UnknownOlympus/hrms/internal/services/attendance"
	"github.com/UnknownOlympus/hrms/internal/services/dashboard"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"

	shutdownTimeout = 10 * time.Second
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	attendanceRepo := repository.NewAttendanceRepository(dtb, appMetrics)

	staff := employees.NewStaff(logger, employeeRepo, attendanceRepo, appMetrics)
	attendanceService := attendance.NewService(logger, attendanceRepo, employeeRepo, appMetrics)
	dashboardService := dashboard.NewService(logger, employeeRepo, attendanceRepo)

	if cfg.Env == envProd {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httpapi.NewHandler(staff, attendanceService, dashboardService, logger)
	router := httpapi.NewRouter(handler, logger, appMetrics, cfg.CORSOrigins)

	apiServer := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.HTTPPort)),
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
	}

	wgr.Add(2) //nolint:mnd // api and monitoring servers

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, dtb, cfg.MetricsPort)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting API server", "port", cfg.HTTPPort)
		if serveErr := apiServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "API server failed", sl.Err(serveErr))
			stop()
		}
		logger.InfoContext(ctx, "API server stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("API server shutdown failed", sl.Err(err))
	}

	wgr.Wait()

	logger.Info("Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{Key: "", Value: slog.Value{}}
		}
		return a
	}

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `HRMS_ENV`: local, development, production")
	}

	return log
}
