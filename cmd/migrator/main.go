package main

import (
	"flag"
	"log"

	"github.com/UnknownOlympus/hrms/internal/config"
	"github.com/UnknownOlympus/hrms/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(cfg.DatabaseURL)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set migration dialect: %v", err)
	}
	if migrationErr := goose.Up(dtb, migrationsDir); migrationErr != nil {
		log.Fatalf("Failed to apply migrations from %s: %v", migrationsDir, migrationErr)
	}

	log.Println("Migrations applied successfully")
}
