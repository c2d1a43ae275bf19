package main

import (
	"os"

	"github.com/colegio-app/colegio-backend/internal/pkg/logger"
	"github.com/colegio-app/colegio-backend/internal/server"
)

// @title Colegio API
// @version 1.0
// @description JSON backend for school administration: students, staff, groups, payments, scholarships and evaluations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
