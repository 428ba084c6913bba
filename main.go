package main

import (
	"log"

	"homematch-backend/config"
	"homematch-backend/internal/api"
	"homematch-backend/internal/database"
	"homematch-backend/internal/models"
	"homematch-backend/pkg/logger"
)

// @title homematch-backend API
// @version 1.0
// @description Buyer profile and prompt settings service for real-estate matching.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.Setting{}, &models.Buyer{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
