package main

import (
	"cowork/config"
	"cowork/di"
	"cowork/helper"
	"cowork/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title		Cowork booking API
// @version	1.0
// @BasePath	/
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Auto migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
