package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/savthe/prediction-confidence/adapters/api"
	"github.com/savthe/prediction-confidence/internal/config"
	"github.com/savthe/prediction-confidence/internal/container"
	"github.com/savthe/prediction-confidence/internal/profiling"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer c.Close()

	profiling.NewServer(cfg.Profiling).Start()

	server := api.NewServer(cfg.Server, c.Confidence)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
