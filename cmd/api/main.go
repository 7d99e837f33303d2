package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shorts-collector/internal/api"
	"github.com/shorts-collector/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := api.NewServer(cfg)

	log.Printf("Server starting on port %s, serving %s", cfg.Port, cfg.DataDir)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
