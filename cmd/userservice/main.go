package main

import (
	"github.com/cdjacome2/microcampus/internal/config"
	"github.com/cdjacome2/microcampus/internal/pkg/logger"
	"github.com/cdjacome2/microcampus/internal/server"
)

// @title MicroCampus User Service API
// @version 1.0
// @description User registry service: manages user profiles for the campus platform

// @contact.name API Support
// @contact.email support@microcampus.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "configs/userservice.yaml")

	srv, err := server.NewUserServer(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize user service")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("User service finished gracefully.")
}
