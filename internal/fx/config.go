package fx

import (
	"FutureYako/config"
	"FutureYako/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

// loadEnvFiles runs before config.Load is first requested. A missing .env is
// normal outside development.
func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env in the working directory")
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
