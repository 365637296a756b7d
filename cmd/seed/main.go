package main

import (
	"context"
	"staybook/config"
	"staybook/di"
	"staybook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := di.InitializeSeeder().Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().Msg("Database seeded successfully")
}
