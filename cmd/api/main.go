package main

import (
	"os"

	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/logger"
	"github.com/Aman-Kr09/OrganicClasses/internal/server"
)

// @title Organic Classes API
// @version 1.0
// @description Back-office API for Organic Classes: staff authentication, course catalogue, enrolment, contact form inquiries and dashboard statistics.
// @termsOfService http://swagger.io/terms/

// @contact.name Organic Classes
// @contact.email info@organicclasses.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token, sent as "Bearer <token>"

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
	os.Exit(0)
}
