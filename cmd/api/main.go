package main

import (
	"log"

	"github.com/paarad/27-backroom-generator/internal/api"
	"github.com/paarad/27-backroom-generator/pkg/utils"
	"go.uber.org/zap"
)

// Start the API server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	logger, err := utils.NewLoggerFromConfig(cfg)
	if err != nil {
		log.Fatalf("[API-MAIN]: Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Start
	if err := api.Start(cfg, logger); err != nil {
		logger.Fatal("API server stopped", zap.Error(err))
	}
}
