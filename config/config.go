package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port     string
	MongoURI string
	DBName   string
}

func Load() Config {
	cfg := Config{
		Port:     getEnv("PORT", "5000"),
		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "sweetpencil"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "5000"
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
