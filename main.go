package main

import (
	"log"

	"vizlens/adapters/postgres"
	"vizlens/internal"
	"vizlens/internal/config"
	"vizlens/internal/dataset"
	"vizlens/internal/errors"
	"vizlens/ports"
	"vizlens/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger.Component("Main")

	var repo ports.DatasetRepository
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("%v", errors.DatabaseError("failed to connect to database: "+err.Error()))
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("%v", errors.DatabaseError("failed to run migrations: "+err.Error()))
		}
		repo = postgres.NewDatasetRepository(db)
		logger.Info("dataset persistence enabled")
	} else {
		logger.Info("no DATABASE_URL set, running without persistence")
	}

	session := dataset.NewSessionWithLimits(cfg.Data.SampleSize, cfg.Data.TopValues)
	server := ui.NewServer(cfg, session, repo)

	if err := server.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
