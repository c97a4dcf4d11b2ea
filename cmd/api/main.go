package main

import (
	"os"

	"github.com/emre/progtrack/internal/pkg/logger"
	"github.com/emre/progtrack/internal/server"
)

// @title Program Countdown API
// @version 1.0
// @description Countdown metrics for a fixed academic program schedule

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
