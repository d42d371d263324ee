package main

import (
	"os"

	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/server"
)

// @title CourseHub Learning Platform API
// @version 1.0
// @description REST backend for browsing courses, enrolling, tracking progress and authoring courses.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
