package main

import (
	"fmt"
	"log"

	"github.com/Fahad-1515/fnol-agent/internal/config"
	"github.com/Fahad-1515/fnol-agent/internal/handler"
	"github.com/Fahad-1515/fnol-agent/internal/port"
	"github.com/Fahad-1515/fnol-agent/internal/repository/postgres"
	"github.com/Fahad-1515/fnol-agent/internal/router"
	"github.com/Fahad-1515/fnol-agent/internal/service"
	s3storage "github.com/Fahad-1515/fnol-agent/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	claimRepo := postgres.NewClaimRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage when archiving is configured
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	claimSvc := service.NewClaimService(cfg, claimRepo, storage)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	claimH := handler.NewClaimHandler(claimSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(claimH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
