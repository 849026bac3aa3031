package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string
	Port int

	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string `validate:"required"`
	DBPassword string `validate:"required"`
	DBSSLMode  string

	OTLPEndpoint string
}

// Load reads configuration from the environment. The database username and
// password have no defaults; startup must abort when they are missing.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "dev"),
		Port:         getEnvInt("PORT", 8000),
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "resume_db"),
		DBUsername:   os.Getenv("DB_USERNAME"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	err := validator.New().Struct(cfg)

	if err != nil {
		return Config{}, fmt.Errorf("DB_USERNAME and DB_PASSWORD must be set: %w", err)
	}

	return cfg, nil
}

func (c Config) DatabaseURL() string {
	return "postgres://" + c.DBUsername + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}
