package app

import (
	"github.com/joho/godotenv"

	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
	"github.com/aarogyaai/aarogya-backend/internal/utils"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         int
}

func LoadConfig(log *logger.Logger) Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}
	return Config{
		DatabaseURL:  utils.GetEnv("DATABASE_URL", "", log),
		DatabaseName: utils.GetEnv("DATABASE_NAME", "aarogyaai", log),
		Port:         utils.GetEnvAsInt("PORT", 8000, log),
	}
}
