package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Environment       string
	ServicePort       string
	MetricsPort       string
	StorePath         string
	AdminPassword     string
	AuthLatencyMillis int
	CollectorHost     string
	CollectorPort     string
}

func CreateNewConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Str("component", "CreateNewConfig").Msg("no .env file found, reading configuration from environment")
	}

	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		ServicePort:       getEnv("SERVICE_PORT", "8080"),
		MetricsPort:       getEnv("METRICS_PORT", "8081"),
		StorePath:         getEnv("STORE_PATH", "data/store.json"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AuthLatencyMillis: getEnvInt("AUTH_LATENCY_MS", 0),
		CollectorHost:     getEnv("COLLECTOR_HOST", ""),
		CollectorPort:     getEnv("COLLECTOR_PORT", "4318"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("component", "getEnvInt").Str("key", key).Msg("invalid integer value, using fallback")
		return fallback
	}
	return parsed
}
