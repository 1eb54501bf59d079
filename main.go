package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cropadvisor/internal/api"
	"cropadvisor/internal/config"
	"cropadvisor/internal/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	if err := c.Load(context.Background()); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer c.Close()

	server := api.NewServer(c.Advisor, c.Classifier, cfg.Server.GinMode)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
