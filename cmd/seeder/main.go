package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/UnknownOlympus/hrms/internal/config"
	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/repository"
	"github.com/UnknownOlympus/hrms/internal/seed"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
)

const seedTimeout = time.Minute

func main() {
	var count int
	flag.IntVar(&count, "n", 10, "number of demo employees to create")
	flag.Parse()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbpool, err := repository.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dbpool.Close()

	// metrics are not exported from the seeder
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	employeeRepo := repository.NewEmployeeRepository(dbpool, appMetrics)
	attendanceRepo := repository.NewAttendanceRepository(dbpool, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, attendanceRepo, appMetrics)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	//nolint:gosec // demo data does not need a cryptographic source
	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	created, err := seed.Employees(ctx, logger, staff, rnd, count)
	if err != nil {
		logger.Error("Seeding stopped early", "created", len(created), "error", err)
		return
	}

	logger.Info("Seeding finished", "created", len(created))
}
