package main

import (
	"github.com/cdjacome2/microcampus/internal/config"
	"github.com/cdjacome2/microcampus/internal/pkg/logger"
	"github.com/cdjacome2/microcampus/internal/server"
)

// @title MicroCampus Course Service API
// @version 1.0
// @description Course catalog and enrollment service; validates users against the user service before enrolling them

// @contact.name API Support
// @contact.email support@microcampus.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "configs/courseservice.yaml")

	srv, err := server.NewCourseServer(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize course service")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Course service finished gracefully.")
}
