// file: internals/configs/config.go
package configs

import (
	"os"

	"github.com/joho/godotenv"

	"medicku_backend/internals/helpers/logger"
)

var JWTSecret string

// LoadEnv loads .env when running locally; hosted environments inject vars
// directly and are detected via APP_ENV.
func LoadEnv() {
	if os.Getenv("APP_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			logger.L().Warn("no .env file found, using system environment")
		} else {
			logger.L().Info(".env file loaded")
		}
	} else {
		logger.WithField("env", os.Getenv("APP_ENV")).Info("using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		logger.L().Error("JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
