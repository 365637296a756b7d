package main

import (
	"staybook/config"
	"staybook/di"
	"staybook/helper"
	"staybook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Staybook API
// @version 1.0
// @description Hotel booking marketplace for customers, vendors and admins.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	if closer := logger.AttachFileOutput(cfg); closer != nil {
		defer closer.Close()
	}

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
